package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/querylab/internal/usecase/lab"
)

type screen int

const (
	screenHome screen = iota
	screenOutput
)

type stepItem struct {
	step lab.Step
}

func (s stepItem) Title() string       { return fmt.Sprintf("%2d. %s", s.step.Number, s.step.Title) }
func (s stepItem) Description() string { return s.step.Slug }
func (s stepItem) FilterValue() string { return s.step.Slug + " " + s.step.Title }

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	scr     screen
	menu    list.Model
	output  viewport.Model
	heading string

	running bool
	toast   string
	failed  bool
	width   int
	height  int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	l := list.New(stepItems(deps.Lab), list.NewDefaultDelegate(), 0, 0)
	l.Title = "Steps"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:  t,
		deps:   deps,
		log:    log,
		scr:    screenHome,
		menu:   l,
		output: viewport.New(0, 0),
	}
}

func stepItems(lb *lab.Lab) []list.Item {
	var items []list.Item
	if lb != nil {
		for _, st := range lb.Steps() {
			items = append(items, stepItem{step: st})
		}
	}
	return items
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		m.output.Width = msg.Width - 8
		m.output.Height = msg.Height - 12
		return m, nil

	case stepDoneMsg:
		m.running = false
		m.toast = ""
		m.failed = msg.section.Failed()
		if m.failed {
			m.toast = userMessage(msg.section.Error)
		}
		m.heading = fmt.Sprintf("%d. %s", msg.section.Step, msg.section.Title)
		m.showOutput(renderSection(msg.section))
		return m, nil

	case labRunDoneMsg:
		m.running = false
		if msg.err != nil {
			m.toast, m.failed = userMessage(msg.err), true
			return m, nil
		}
		m.toast, m.failed = "", false
		m.heading = fmt.Sprintf("All steps (%d failed)", msg.report.FailedSections())
		m.showOutput(renderReport(msg.report, m.theme))
		return m, nil

	case reloadDoneMsg:
		m.running = false
		if msg.err != nil {
			m.toast, m.failed = userMessage(msg.err), true
			return m, nil
		}
		m.deps.Lab, m.deps.Source = msg.lab, msg.source
		cmd := m.menu.SetItems(stepItems(msg.lab))
		m.toast, m.failed = "Reloaded "+msg.source, false
		return m, cmd

	case tea.KeyMsg:
		if m.scr == screenHome && m.menu.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "enter":
			if m.scr == screenHome && !m.running && m.deps.Lab != nil {
				it, ok := m.menu.SelectedItem().(stepItem)
				if !ok {
					return m, nil
				}
				m.running = true
				m.toast, m.failed = "Running "+it.step.Slug+"…", false
				return m, cmdRunStep(m.deps.Lab, it.step, m.log, m.deps.Debug)
			}

		case "a":
			if m.scr == screenHome && !m.running && m.deps.Lab != nil {
				m.running = true
				m.toast, m.failed = "Running all steps…", false
				return m, cmdRunAll(m.deps.Lab, m.log)
			}

		case "r":
			if m.scr == screenHome && !m.running && m.deps.Reload != nil {
				m.running = true
				m.toast, m.failed = "Reloading dataset…", false
				return m, cmdReload(m.deps.Reload, m.log)
			}

		case "esc", "b":
			if m.scr != screenHome {
				m.scr = screenHome
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.scr == screenHome {
		m.menu, cmd = m.menu.Update(msg)
	} else {
		m.output, cmd = m.output.Update(msg)
	}
	return m, cmd
}

func (m *model) showOutput(content string) {
	m.scr = screenOutput
	m.output.SetContent(content)
	m.output.GotoTop()
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("querylab") + "\n" +
		m.theme.Subtitle.Render("Query operations over an in-memory dataset") + "\n"

	source := m.deps.Source
	if source == "" {
		source = "builtin"
	}
	banner := m.theme.Help.Render("Data: " + clampString(source, 60))

	status := ""
	if m.toast != "" {
		style := m.theme.Subtitle
		if m.failed {
			style = m.theme.Fail
		}
		status = "\n" + style.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter run • a run all • r reload • / search • q quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help + status)

	case screenOutput:
		card := m.theme.Card.Render(
			m.theme.Title.Render(m.heading) + "\n\n" + m.output.View(),
		)
		help := m.theme.Help.Render("↑/↓ scroll • esc/b back • q quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + card + "\n" + help + status)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
