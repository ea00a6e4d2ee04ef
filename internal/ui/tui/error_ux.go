package tui

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/querylab/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage maps dataset reload errors and failed step sections to a
// one-line toast.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		return kindMessage(oe.Kind, oe.Op, oe.Path, err)
	}

	var se *domain.StepError
	if errors.As(err, &se) {
		return kindMessage(se.Kind, "", "", err)
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func kindMessage(kind domain.ErrorKind, op, path string, err error) string {
	switch kind {

	case domain.KindNotFound:
		if strings.Contains(op, "yamldata") {
			return "Dataset not found"
		}
		if strings.Contains(op, "workspacefinder") {
			return "Workspace config not found"
		}
		return "Not found"

	case domain.KindEmptySequence:
		return "Sequence contains no elements"

	case domain.KindInvalidKey:
		return "Unknown reference"

	case domain.KindInvalidConfig:
		base := "config"
		if strings.TrimSpace(path) != "" {
			base = filepath.Base(path)
		}

		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML at " + base + " line " + line
		}

		if looksLikeYAMLProblem(err.Error()) {
			return "Invalid YAML at " + base
		}
		return "Invalid dataset at " + base

	default:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "Run cancelled"
		}
		return "Unexpected error (see logs)"
	}
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
