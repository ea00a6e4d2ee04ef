package usecase

import (
	"context"

	"github.com/aalvaropc/querylab/internal/domain"
	"github.com/aalvaropc/querylab/internal/ports"
	"github.com/aalvaropc/querylab/internal/usecase/lab"
)

type RunLab struct {
	lab       *lab.Lab
	artifacts ports.ArtifactStore
}

// NewRunLab wires a lab to an optional artifact store; a nil store disables saving.
func NewRunLab(lb *lab.Lab, artifacts ports.ArtifactStore) *RunLab {
	return &RunLab{lab: lb, artifacts: artifacts}
}

// Execute runs the selected steps and saves the report when a store is configured.
// The report is returned even when saving fails.
func (uc *RunLab) Execute(ctx context.Context, selectors []string) (domain.Report, string, error) {
	report, err := uc.lab.Run(ctx, selectors...)
	if err != nil {
		return report, "", err
	}

	if uc.artifacts == nil {
		return report, "", nil
	}

	id, err := uc.artifacts.SaveReport(report)
	if err != nil {
		return report, "", err
	}
	return report, id, nil
}
