package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/querylab/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads querylab.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if f := strings.TrimSpace(y.Querylab.Output.Format); f != "" {
		if f != "pretty" && f != "json" {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("field output.format: unsupported format %q: %w", f, domain.ErrInvalidConfig),
			}
		}
		cfg.Output.Format = f
	}
	if y.Querylab.Output.Pause != nil {
		cfg.Output.Pause = *y.Querylab.Output.Pause
	}
	if y.Querylab.Data.Path != "" {
		cfg.Data.Path = y.Querylab.Data.Path
	}
	if y.Querylab.Paths.RunsDir != "" {
		cfg.Paths.RunsDir = y.Querylab.Paths.RunsDir
	}

	return cfg, nil
}

type yamlConfig struct {
	Querylab struct {
		Output struct {
			Format string `yaml:"format"`
			Pause  *bool  `yaml:"pause"`
		} `yaml:"output"`

		Data struct {
			Path string `yaml:"path"`
		} `yaml:"data"`

		Paths struct {
			RunsDir string `yaml:"runs_dir"`
		} `yaml:"paths"`
	} `yaml:"querylab"`
}
