package domain

import (
	"errors"
	"time"
)

// StepError is the structured, printable form of an error raised by a single lab step.
type StepError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// NewStepError classifies err for display. It returns nil for a nil error.
func NewStepError(err error) *StepError {
	if err == nil {
		return nil
	}
	return &StepError{Kind: KindOf(err), Message: err.Error()}
}

func (e *StepError) Error() string { return e.Message }

// Section is the output of a single lab step.
type Section struct {
	Step  int        `json:"step"`
	Slug  string     `json:"slug"`
	Title string     `json:"title"`
	Lines []string   `json:"lines"`
	Error *StepError `json:"error,omitempty"`
}

// Failed reports whether the step ended with an error.
func (s Section) Failed() bool { return s.Error != nil }

// Report is the result of running a selection of lab steps.
type Report struct {
	DataSource string    `json:"data_source"`
	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`
	Sections   []Section `json:"sections"`
}

// FailedSections counts sections that ended with an error.
func (r Report) FailedSections() int {
	n := 0
	for _, s := range r.Sections {
		if s.Failed() {
			n++
		}
	}
	return n
}

// CheckResult is the outcome of a single dataset property check.
type CheckResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// ErrStepFailed marks a lab run in which at least one step reported an error.
var ErrStepFailed = errors.New("step failed")
