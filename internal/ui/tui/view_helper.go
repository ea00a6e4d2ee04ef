package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/querylab/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderSection expands tabs so group members line up inside the viewport.
func renderSection(sec domain.Section) string {
	var b strings.Builder

	if sec.Error != nil {
		b.WriteString("Error:\n")
		b.WriteString("  - kind: ")
		b.WriteString(string(sec.Error.Kind))
		b.WriteString("\n  - msg: ")
		b.WriteString(sec.Error.Message)
		b.WriteString("\n")
		return b.String()
	}

	if len(sec.Lines) == 0 {
		return "(no results)\n"
	}
	for _, line := range sec.Lines {
		b.WriteString(strings.ReplaceAll(line, "\t", "    "))
		b.WriteString("\n")
	}
	return b.String()
}

func renderReport(report domain.Report, theme Theme) string {
	var b strings.Builder
	for i, sec := range report.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		status := theme.Pass.Render("OK")
		if sec.Failed() {
			status = theme.Fail.Render("FAIL")
		}
		b.WriteString(fmt.Sprintf("%d. %s [%s]\n", sec.Step, sec.Title, status))
		b.WriteString(renderSection(sec))
	}
	return b.String()
}
