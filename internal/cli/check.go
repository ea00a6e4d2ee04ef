package cli

import (
	"fmt"
	"io"

	"github.com/aalvaropc/querylab/internal/domain"
	"github.com/aalvaropc/querylab/internal/usecase/check"
	"github.com/spf13/cobra"
)

func checkCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify query properties against the loaded dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(flags)
			if err != nil {
				return err
			}

			results := check.Evaluate(ws.store)
			fails := printChecks(cmd.OutOrStdout(), results)
			if fails > 0 {
				return fmt.Errorf("%d of %d check(s) failed", fails, len(results))
			}
			return nil
		},
	}
}

func printChecks(w io.Writer, results []domain.CheckResult) (fails int) {
	for _, r := range results {
		mark := "✓"
		if !r.Passed {
			mark = "✗"
			fails++
		}
		fmt.Fprintf(w, "%s %s: %s\n", mark, r.Name, r.Message)
	}
	return fails
}
