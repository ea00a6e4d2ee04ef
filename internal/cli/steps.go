package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func stepsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "List the lab steps",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(flags)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, st := range ws.lab.Steps() {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", st.Number, st.Slug, st.Title)
			}
			return tw.Flush()
		},
	}
}
