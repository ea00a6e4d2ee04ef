package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const pausePrompt = "Press <Enter> to quit the application"

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	var noPause bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "querylab",
		Short:        "querylab — query operations over an in-memory dataset",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			cleanup = setupLogging(flags)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(flags)
			if err != nil {
				return err
			}

			report, err := ws.lab.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printPrettyReport(out, report, "")

			if noPause || !ws.cfg.Output.Pause {
				return nil
			}
			return waitForEnter(out, cmd.InOrStdin())
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().StringVar(&flags.data, "data", "", "YAML dataset to load instead of the built-in data")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable verbose logging to .querylab/logs/querylab.log")
	cmd.Flags().BoolVar(&noPause, "no-pause", false, "Exit without waiting for <Enter>")

	cmd.AddCommand(
		runCmd(flags),
		stepsCmd(flags),
		checkCmd(flags),
		inspectCmd(flags),
		initCmd(),
		tuiCmd(flags),
		versionCmd(),
	)
	return cmd
}

// waitForEnter returns once a line (or EOF) is read.
func waitForEnter(w io.Writer, r io.Reader) error {
	fmt.Fprintln(w, pausePrompt)
	_, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	return nil
}
