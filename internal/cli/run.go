package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/aalvaropc/querylab/internal/domain"
	"github.com/aalvaropc/querylab/internal/usecase"
	"github.com/spf13/cobra"
)

func runCmd(flags *globalFlags) *cobra.Command {
	var save bool
	var format string

	c := &cobra.Command{
		Use:   "run [step...]",
		Short: "Run all lab steps, or the given step numbers/slugs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(flags)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("format") {
				format = ws.cfg.Output.Format
			}

			var artifacts = ws.artifacts
			if !save {
				artifacts = nil
			}

			uc := usecase.NewRunLab(ws.lab, artifacts)

			report, reportID, err := uc.Execute(cmd.Context(), args)
			if err != nil {
				// A failed save still has a complete report worth showing.
				if len(report.Sections) > 0 {
					_ = printReport(cmd.OutOrStdout(), report, reportID, format)
				}
				return err
			}

			if err := printReport(cmd.OutOrStdout(), report, reportID, format); err != nil {
				return err
			}

			if fails := report.FailedSections(); fails > 0 {
				return fmt.Errorf("run failed (%d failed step(s)): %w", fails, domain.ErrStepFailed)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&save, "save", false, "Save the report under the runs directory")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printReport(w io.Writer, report domain.Report, reportID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"report_id": reportID,
			"report":    report,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyReport(w, report, reportID)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

// printPrettyReport renders sections the way the console lab prints them:
// a title line, the result lines, then a blank line.
func printPrettyReport(w io.Writer, report domain.Report, reportID string) {
	for _, sec := range report.Sections {
		fmt.Fprintf(w, "%d. %s\n", sec.Step, sec.Title)
		for _, line := range sec.Lines {
			fmt.Fprintln(w, line)
		}
		if sec.Error != nil {
			fmt.Fprintf(w, "error: %s (%s)\n", sec.Error.Message, sec.Error.Kind)
		}
		fmt.Fprintln(w)
	}

	if reportID == "" {
		return
	}

	total := report.EndedAt.Sub(report.StartedAt)
	if report.StartedAt.IsZero() || report.EndedAt.IsZero() {
		total = 0
	}
	fmt.Fprintf(w, "Data:       %s\n", report.DataSource)
	fmt.Fprintf(w, "Started:    %s\n", report.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration:   %s\n", total)
	fmt.Fprintf(w, "Report ID:  %s\n", reportID)
}
