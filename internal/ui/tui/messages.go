package tui

import (
	"github.com/aalvaropc/querylab/internal/domain"
	"github.com/aalvaropc/querylab/internal/usecase/lab"
)

type stepDoneMsg struct {
	section domain.Section
}

type labRunDoneMsg struct {
	report domain.Report
	err    error
}

type reloadDoneMsg struct {
	lab    *lab.Lab
	source string
	err    error
}
