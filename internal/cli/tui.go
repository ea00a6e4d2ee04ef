package cli

import (
	"github.com/aalvaropc/querylab/internal/infra/logger"
	"github.com/aalvaropc/querylab/internal/ui/tui"
	"github.com/aalvaropc/querylab/internal/usecase/lab"
	"github.com/spf13/cobra"
)

func tuiCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and run lab steps interactively",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(flags)
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Lab:    ws.lab,
				Source: ws.store.Source(),
				Reload: reloadLab(flags),
				Logger: logger.L(),
				Debug:  flags.debug,
			})
		},
	}
}

// reloadLab re-reads querylab.yaml and the dataset so edits show up without
// restarting the TUI.
func reloadLab(flags *globalFlags) tui.ReloadFunc {
	return func() (*lab.Lab, string, error) {
		ws, err := loadWorkspace(flags)
		if err != nil {
			return nil, "", err
		}
		return ws.lab, ws.store.Source(), nil
	}
}
