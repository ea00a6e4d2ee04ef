package tui

import (
	"log/slog"

	"github.com/aalvaropc/querylab/internal/usecase/lab"
)

// ReloadFunc rebuilds the lab from the workspace dataset and reports its source.
type ReloadFunc func() (*lab.Lab, string, error)

type Deps struct {
	Lab *lab.Lab
	// Source names the dataset shown in the header.
	Source string
	// Reload is optional; without it the r key does nothing.
	Reload ReloadFunc

	Logger *slog.Logger
	Debug  bool
}
