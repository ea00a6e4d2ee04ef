package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/querylab/internal/domain"
	"github.com/aalvaropc/querylab/internal/infra/logger"
	"github.com/aalvaropc/querylab/internal/infra/memstore"
	"github.com/aalvaropc/querylab/internal/infra/runstore"
	"github.com/aalvaropc/querylab/internal/infra/workspacefinder"
	"github.com/aalvaropc/querylab/internal/infra/yamldata"
	"github.com/aalvaropc/querylab/internal/ports"
	"github.com/aalvaropc/querylab/internal/usecase/lab"
)

// globalFlags are shared by every command through the root's persistent flags.
type globalFlags struct {
	workspace string
	data      string
	debug     bool
}

type workspaceCtx struct {
	// root is the workspace root, or the working directory when found is false.
	root  string
	found bool
	cfg   domain.Config

	store     *memstore.Store
	lab       *lab.Lab
	artifacts ports.ArtifactStore
}

// loadWorkspace works without a workspace: the built-in dataset and default
// config are used, and reports are saved relative to the working directory.
func loadWorkspace(flags *globalFlags) (*workspaceCtx, error) {
	ws := &workspaceCtx{cfg: domain.DefaultConfig()}

	root, err := resolveWorkspaceRoot(flags.workspace)
	switch {
	case err == nil:
		cfg, cerr := workspacefinder.LoadConfig(root)
		if cerr != nil {
			return nil, cerr
		}
		ws.root, ws.found, ws.cfg = root, true, cfg
	case strings.TrimSpace(flags.workspace) != "" || !domain.IsKind(err, domain.KindNotFound):
		return nil, err
	default:
		wd, werr := os.Getwd()
		if werr != nil {
			return nil, fmt.Errorf("get working directory: %w", werr)
		}
		ws.root = wd
	}

	dataPath := strings.TrimSpace(flags.data)
	if dataPath == "" {
		dataPath = ws.cfg.Data.Path
	}

	store, err := openStore(ws.root, dataPath)
	if err != nil {
		return nil, err
	}
	ws.store = store

	ws.lab = lab.New(store,
		lab.WithLogger(logger.L()),
		lab.WithSource(store.Source()),
	)
	ws.artifacts = runstore.NewJSONStore(ws.root, ws.cfg, runstore.WithIndex(true))
	return ws, nil
}

func openStore(root, dataPath string) (*memstore.Store, error) {
	if dataPath == "" {
		return memstore.New(), nil
	}

	var loader ports.DatasetLoader = yamldata.NewLoader(root)
	ds, err := loader.LoadDataset(dataPath)
	if err != nil {
		return nil, err
	}
	return memstore.FromDataset(ds, dataPath)
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	var locator ports.WorkspaceLocator = workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `querylab init`): %w", wd, err)
	}
	return root, nil
}

// setupLogging only writes a log file inside a workspace.
func setupLogging(flags *globalFlags) func() error {
	root, err := resolveWorkspaceRoot(flags.workspace)
	if err != nil {
		return nil
	}
	if _, err := os.Stat(filepath.Join(root, workspacefinder.ConfigFileName)); err != nil {
		return nil
	}

	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: flags.debug})
	if err != nil {
		return nil
	}
	return cleanup
}
