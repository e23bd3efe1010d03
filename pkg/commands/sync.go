package commands

import (
	"context"
	"time"

	"github.com/arthur-debert/nuspecmaker/pkg/config"
	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/filesystem"
	"github.com/arthur-debert/nuspecmaker/pkg/logging"
	"github.com/arthur-debert/nuspecmaker/pkg/packager"
	"github.com/arthur-debert/nuspecmaker/pkg/projects"
	"github.com/arthur-debert/nuspecmaker/pkg/synchronizer"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
)

// SyncOptions defines the options for synchronizing manifests
type SyncOptions struct {
	// SolutionRoot is the directory holding nuspec.config
	SolutionRoot string
	// Projects are explicit project references; see projects.FromArgs
	Projects []string
	// ListFile is a YAML or TOML project list
	ListFile string
	// SolutionFile is a .sln to take projects from
	SolutionFile string
	// ToolPath overrides the configured packaging tool
	ToolPath string
	// FileSystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
	// Generator replaces the packaging tool (optional, for tests)
	Generator types.SkeletonGenerator
}

// Sync loads the configuration once, then synchronizes every project in
// order. Configuration and discovery errors abort the run and are returned;
// per-project failures are recorded in the result and the run continues.
func Sync(ctx context.Context, opts SyncOptions) (*types.RunResult, error) {
	logger := logging.GetLogger("commands.sync")
	logger.Debug().
		Str("solutionRoot", opts.SolutionRoot).
		Strs("projects", opts.Projects).
		Str("listFile", opts.ListFile).
		Str("solutionFile", opts.SolutionFile).
		Msg("Starting sync operation")

	defer logging.LogDuration(time.Now(), "sync")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	cfg, err := config.Load(config.LoadOptions{
		SolutionRoot:  opts.SolutionRoot,
		ToolPath:      opts.ToolPath,
		SkipToolCheck: opts.Generator != nil,
		FileSystem:    fsys,
	})
	if err != nil {
		return nil, err
	}

	list, err := projects.Discover(projects.Options{
		SolutionRoot: opts.SolutionRoot,
		Args:         opts.Projects,
		ListFile:     opts.ListFile,
		SolutionFile: opts.SolutionFile,
		FileSystem:   fsys,
	})
	if err != nil {
		return nil, err
	}

	generator := opts.Generator
	if generator == nil {
		generator = packager.NewToolGenerator(cfg.ToolPath)
	}

	result := &types.RunResult{
		SolutionRoot: opts.SolutionRoot,
		ConfigPath:   cfg.Path,
		ToolPath:     cfg.ToolPath,
		Projects:     make([]types.ProjectResult, 0, len(list)),
	}

	sync := synchronizer.New(cfg, fsys, generator)
	for i, project := range list {
		if err := ctx.Err(); err != nil {
			logger.Warn().Int("remaining", len(list)-i).Msg("Run cancelled")
			return result, errors.Wrap(err, errors.ErrInternal, "run cancelled")
		}

		logger.Info().
			Str("project", project.Name).
			Str("path", project.Path).
			Msgf("%d/%d: updating project %s", i+1, len(list), project.Name)

		res := sync.SyncProject(ctx, project)
		logger.Info().
			Str("project", project.Name).
			Str("outcome", string(res.Outcome)).
			Dur("duration", res.Duration).
			Msg("Project done")
		result.Add(res)
	}

	logger.Info().
		Int("total", result.Summary.Total).
		Int("created", result.Summary.Created).
		Int("updated", result.Summary.Updated).
		Int("skipped", result.Summary.Skipped).
		Int("failed", result.Summary.Failed).
		Msg("Sync operation completed")

	return result, nil
}
