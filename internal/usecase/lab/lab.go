// Package lab holds the ordered demonstration steps and runs them against an
// object store. A step that fails is reported in its own section; the
// remaining steps still run.
package lab

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/aalvaropc/querylab/internal/domain"
	"github.com/aalvaropc/querylab/internal/ports"
)

// StepFunc produces the printable lines of a step.
type StepFunc func(ports.ObjectStore) ([]string, error)

// Step is one demonstration in the lab.
type Step struct {
	Number int
	Slug   string
	Title  string
	Run    StepFunc
}

func defaultSteps() []Step {
	steps := []Step{
		{Slug: "people", Title: "All people", Run: stepPeople},
		{Slug: "where-prefix", Title: "Filtering (Where): first names starting with 's'", Run: stepWherePrefix},
		{Slug: "where-chained", Title: "'S' names over 55 years old (chained filters)", Run: stepWhereChained},
		{Slug: "where-single", Title: "'S' names over 55 years old (single predicate)", Run: stepWhereSingle},
		{Slug: "where-height", Title: "People <= 64 inches tall or with no height entered", Run: stepWhereHeight},
		{Slug: "sort-age", Title: "Sorting: by age", Run: stepSortAge},
		{Slug: "sort-age-name", Title: "Sorting: by age, then last name, then first name", Run: stepSortAgeName},
		{Slug: "sort-height", Title: "Sort by height descending with null heights first, then by last name", Run: stepSortHeight},
		{Slug: "select-codes", Title: "Select: rating codes", Run: stepSelectCodes},
		{Slug: "select-list-item", Title: "Selection with a named result type", Run: stepSelectListItem},
		{Slug: "select-anon", Title: "Selection with an ad hoc result type", Run: stepSelectAnon},
		{Slug: "select-birthdates", Title: "Select exercise: names and birth dates", Run: stepSelectBirthdates},
		{Slug: "combo", Title: "Combining filtering, sorting and selection", Run: stepCombo},
		{Slug: "element", Title: "Element operators", Run: stepElement},
		{Slug: "group", Title: "Grouping by hair color", Run: stepGroup},
		{Slug: "aggregate", Title: "Aggregates", Run: stepAggregate},
	}
	for i := range steps {
		steps[i].Number = i + 1
	}
	return steps
}

type Lab struct {
	store  ports.ObjectStore
	steps  []Step
	source string
	log    *slog.Logger
	now    func() time.Time
}

type Option func(*Lab)

func WithLogger(l *slog.Logger) Option {
	return func(lb *Lab) {
		if l != nil {
			lb.log = l
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(lb *Lab) { lb.now = now }
}

// WithSource records where the store's data came from in every report.
func WithSource(source string) Option {
	return func(lb *Lab) { lb.source = source }
}

// WithSteps replaces the built-in steps. Numbers are reassigned in order.
func WithSteps(steps []Step) Option {
	return func(lb *Lab) {
		lb.steps = make([]Step, len(steps))
		copy(lb.steps, steps)
		for i := range lb.steps {
			lb.steps[i].Number = i + 1
		}
	}
}

func New(store ports.ObjectStore, opts ...Option) *Lab {
	lb := &Lab{
		store: store,
		steps: defaultSteps(),
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(lb)
	}
	return lb
}

// Steps returns a copy of the step catalog.
func (lb *Lab) Steps() []Step {
	out := make([]Step, len(lb.steps))
	copy(out, lb.steps)
	return out
}

// Select resolves step numbers or slugs. No selectors means every step.
func (lb *Lab) Select(selectors ...string) ([]Step, error) {
	if len(selectors) == 0 {
		return lb.Steps(), nil
	}

	out := make([]Step, 0, len(selectors))
	for _, sel := range selectors {
		st, ok := lb.find(strings.TrimSpace(sel))
		if !ok {
			return nil, &domain.OpError{
				Op:   "lab.select",
				Kind: domain.KindNotFound,
				Err:  fmt.Errorf("unknown step %q: %w", sel, domain.ErrNotFound),
			}
		}
		out = append(out, st)
	}
	return out, nil
}

func (lb *Lab) find(sel string) (Step, bool) {
	if n, err := strconv.Atoi(sel); err == nil {
		if n >= 1 && n <= len(lb.steps) {
			return lb.steps[n-1], true
		}
		return Step{}, false
	}
	for _, st := range lb.steps {
		if strings.EqualFold(st.Slug, sel) {
			return st, true
		}
	}
	return Step{}, false
}

// Run executes the selected steps in order. Step failures are recorded in
// their sections; only an unknown selector or a cancelled context is returned
// as an error, together with whatever sections completed.
func (lb *Lab) Run(ctx context.Context, selectors ...string) (domain.Report, error) {
	steps, err := lb.Select(selectors...)
	if err != nil {
		return domain.Report{}, err
	}

	report := domain.Report{
		DataSource: lb.source,
		StartedAt:  lb.now(),
		Sections:   make([]domain.Section, 0, len(steps)),
	}

	for _, st := range steps {
		if err := ctx.Err(); err != nil {
			report.EndedAt = lb.now()
			return report, &domain.OpError{Op: "lab.run", Kind: domain.KindExecution, Err: err}
		}
		report.Sections = append(report.Sections, lb.RunStep(st))
	}

	report.EndedAt = lb.now()
	lb.log.Info("lab.run.done",
		"steps", len(report.Sections),
		"failed", report.FailedSections(),
		"source", lb.source,
	)
	return report, nil
}

// RunStep executes a single step and never fails: errors land in the section.
func (lb *Lab) RunStep(st Step) domain.Section {
	sec := domain.Section{Step: st.Number, Slug: st.Slug, Title: st.Title}

	lines, err := st.Run(lb.store)
	if err != nil {
		lb.log.Warn("lab.step.failed", "slug", st.Slug, "kind", domain.KindOf(err), "err", err)
		sec.Lines = []string{}
		sec.Error = domain.NewStepError(err)
		return sec
	}

	if lines == nil {
		lines = []string{}
	}
	sec.Lines = lines
	lb.log.Debug("lab.step.done", "slug", st.Slug, "lines", len(lines))
	return sec
}
