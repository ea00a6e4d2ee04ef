// Package yamldata loads lab datasets from YAML files.
package yamldata

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/querylab/internal/domain"
	"github.com/aalvaropc/querylab/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	rootDir string
}

// NewLoader resolves relative dataset paths against root.
func NewLoader(root string) *Loader {
	return &Loader{rootDir: root}
}

var _ ports.DatasetLoader = (*Loader)(nil)

func (l *Loader) LoadDataset(path string) (domain.Dataset, error) {
	p := filepath.Clean(path)
	if !filepath.IsAbs(p) && l.rootDir != "" {
		p = filepath.Join(l.rootDir, p)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		return domain.Dataset{}, &domain.OpError{
			Op:   "yamldata.load",
			Kind: domain.KindNotFound,
			Path: p,
			Err:  err,
		}
	}

	var yd yamlDataset
	if err := yaml.Unmarshal(b, &yd); err != nil {
		return domain.Dataset{}, &domain.OpError{
			Op:   "yamldata.load",
			Kind: domain.KindInvalidConfig,
			Path: p,
			Err:  err,
		}
	}

	return mapDataset(p, yd)
}
