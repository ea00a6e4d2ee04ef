package ports

import "github.com/aalvaropc/querylab/internal/domain"

// ArtifactStore persists lab reports.
type ArtifactStore interface {
	SaveReport(report domain.Report) (id string, err error)
}
