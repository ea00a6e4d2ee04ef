package cli

import (
	"fmt"

	"github.com/aalvaropc/querylab/internal/usecase/inspect"
	"github.com/spf13/cobra"
)

func inspectCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <jsonpath>",
		Short: "Evaluate a JSONPath expression against the dataset",
		Example: `  querylab inspect '$.people[*].lastName'
  querylab inspect '$.people[?(@.id == 2)]'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(flags)
			if err != nil {
				return err
			}

			v, err := inspect.Eval(ws.store.Snapshot(), args[0])
			if err != nil {
				return err
			}

			out, err := inspect.Format(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
