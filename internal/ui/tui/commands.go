package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/querylab/internal/usecase/lab"
)

func cmdRunStep(lb *lab.Lab, st lab.Step, log *slog.Logger, debug bool) tea.Cmd {
	return func() tea.Msg {
		if debug {
			log.Debug("tui.step.start", "slug", st.Slug)
		}
		sec := lb.RunStep(st)
		if sec.Failed() {
			log.Warn("tui.step.failed", "slug", st.Slug, "kind", string(sec.Error.Kind), "message", sec.Error.Message)
		}
		return stepDoneMsg{section: sec}
	}
}

func cmdRunAll(lb *lab.Lab, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		report, err := lb.Run(context.Background())
		if err != nil {
			log.Error("tui.run.failed", "err", err)
		}
		return labRunDoneMsg{report: report, err: err}
	}
}

func cmdReload(reload ReloadFunc, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		lb, source, err := reload()
		if err != nil {
			log.Error("tui.reload.failed", "err", err)
			return reloadDoneMsg{err: err}
		}
		log.Info("tui.reload.done", "source", source)
		return reloadDoneMsg{lab: lb, source: source}
	}
}
