package domain

// Config represents the querylab configuration loaded from querylab.yaml.
type Config struct {
	Output OutputConfig
	Data   DataConfig
	Paths  PathsConfig
}

type OutputConfig struct {
	// Format is pretty or json.
	Format string
	// Pause waits for <Enter> after a full run, like the classic console lab.
	Pause bool
}

type DataConfig struct {
	// Path of a YAML dataset, relative to the workspace root. Empty means built-in data.
	Path string
}

type PathsConfig struct {
	RunsDir string
}

// WorkspaceSpec describes where a workspace is created.
type WorkspaceSpec struct {
	Root string
}

// DefaultConfig provides sane defaults if querylab.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Format: "pretty",
			Pause:  true,
		},
		Paths: PathsConfig{
			RunsDir: "runs",
		},
	}
}
