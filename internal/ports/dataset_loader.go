package ports

import "github.com/aalvaropc/querylab/internal/domain"

// DatasetLoader loads a dataset from a source (e.g., filesystem).
type DatasetLoader interface {
	LoadDataset(path string) (domain.Dataset, error)
}
