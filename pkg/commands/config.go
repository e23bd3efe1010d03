package commands

import (
	"io/fs"

	"github.com/arthur-debert/nuspecmaker/pkg/config"
	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/filesystem"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
)

// ConfigOptions defines the options for the config commands
type ConfigOptions struct {
	// SolutionRoot is the directory holding nuspec.config
	SolutionRoot string
	// ToolPath overrides the configured packaging tool
	ToolPath string
	// FileSystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// ConfigInitResult reports the outcome of config init
type ConfigInitResult struct {
	Path    string `json:"path"`
	Created bool   `json:"created"`
}

// ConfigReport is the effective configuration of a solution root
type ConfigReport struct {
	Path      string                  `json:"path"`
	Tool      string                  `json:"tool"`
	ToolPath  string                  `json:"toolPath,omitempty"`
	ToolError string                  `json:"toolError,omitempty"`
	Global    config.MetadataDefaults `json:"global"`
	Ignore    []string                `json:"ignore"`
}

// InitConfig writes the default settings file unless one exists
func InitConfig(opts ConfigOptions) (*ConfigInitResult, error) {
	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	path, created, err := config.Bootstrap(fsys, opts.SolutionRoot)
	if err != nil {
		return nil, err
	}
	return &ConfigInitResult{Path: path, Created: created}, nil
}

// ShowConfig loads the settings file without creating it and reports the
// effective values, including whether the packaging tool resolves
func ShowConfig(opts ConfigOptions) (*ConfigReport, error) {
	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	path := config.PathFor(opts.SolutionRoot)
	if _, err := fsys.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Newf(errors.ErrNotFound,
				"no %s in %s, run 'config init' to create one", config.FileName, opts.SolutionRoot).
				WithDetail("path", path)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access configuration").
			WithDetail("path", path)
	}

	cfg, err := config.Load(config.LoadOptions{
		SolutionRoot:  opts.SolutionRoot,
		ToolPath:      opts.ToolPath,
		SkipToolCheck: true,
		FileSystem:    fsys,
	})
	if err != nil {
		return nil, err
	}

	report := &ConfigReport{
		Path:   cfg.Path,
		Tool:   cfg.Tool,
		Global: cfg.Defaults,
		Ignore: cfg.Ignore.Raw(),
	}

	if toolPath, err := config.ResolveToolPath(fsys, opts.SolutionRoot, cfg.Tool); err != nil {
		report.ToolError = err.Error()
	} else {
		report.ToolPath = toolPath
	}

	return report, nil
}
