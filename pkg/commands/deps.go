package commands

import (
	"path/filepath"

	"github.com/arthur-debert/nuspecmaker/pkg/filesystem"
	"github.com/arthur-debert/nuspecmaker/pkg/lockfile"
	"github.com/arthur-debert/nuspecmaker/pkg/logging"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
)

// DepsOptions defines the options for reading a project's dependencies
type DepsOptions struct {
	// ProjectDir is the project directory (or a project file in it)
	ProjectDir string
	// FileSystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// DepsResult is the dependency map of one project
type DepsResult struct {
	ProjectDir   string              `json:"projectDir"`
	LockFile     string              `json:"lockFile"`
	Dependencies types.DependencyMap `json:"dependencies"`
}

// Deps extracts the dependency map without touching the manifest
func Deps(opts DepsOptions) (*DepsResult, error) {
	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	dir := opts.ProjectDir
	if info, err := fsys.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	logger := logging.WithFields(map[string]interface{}{
		"component":  "commands.deps",
		"projectDir": dir,
	})

	deps, err := lockfile.Extract(fsys, dir)
	if err != nil {
		logger.Debug().Err(err).Msg("Dependency extraction failed")
		return nil, err
	}
	logger.Debug().Int("frameworks", len(deps)).Int("packages", deps.PackageCount()).Msg("Dependencies extracted")

	return &DepsResult{
		ProjectDir:   dir,
		LockFile:     lockfile.PathFor(dir),
		Dependencies: deps,
	}, nil
}
