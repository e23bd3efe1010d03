// Package synchronizer brings a project's package manifest in line with its
// restore lock file.
//
// For each project the steps are: exclusion check, skeleton generation when
// no manifest exists, parse, metadata defaults (fresh manifests only),
// dependency rebuild, write. A failure at any step ends that project's
// synchronization and nothing else.
package synchronizer

import (
	"context"
	"io/fs"
	"time"

	"github.com/arthur-debert/nuspecmaker/pkg/config"
	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/filesystem"
	"github.com/arthur-debert/nuspecmaker/pkg/lockfile"
	"github.com/arthur-debert/nuspecmaker/pkg/logging"
	"github.com/arthur-debert/nuspecmaker/pkg/manifest"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
	"github.com/rs/zerolog"
)

// Synchronizer applies one run's configuration to projects. It holds no
// per-project state and may be reused across projects.
type Synchronizer struct {
	config    *config.Config
	fs        types.FS
	generator types.SkeletonGenerator
	logger    zerolog.Logger
}

// New creates a Synchronizer. fsys defaults to the OS filesystem.
func New(cfg *config.Config, fsys types.FS, generator types.SkeletonGenerator) *Synchronizer {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Synchronizer{
		config:    cfg,
		fs:        fsys,
		generator: generator,
		logger:    logging.GetLogger("synchronizer"),
	}
}

// Sync synchronizes a single project and returns what happened to it
func (s *Synchronizer) Sync(ctx context.Context, project types.Project) (types.SyncOutcome, error) {
	res := s.SyncProject(ctx, project)
	return res.Outcome, res.Err()
}

// SyncProject synchronizes a single project and reports the details
func (s *Synchronizer) SyncProject(ctx context.Context, project types.Project) types.ProjectResult {
	start := time.Now()
	res := types.ProjectResult{Project: project}

	if err := s.sync(ctx, project, &res); err != nil {
		s.logger.Error().
			Err(err).
			Str("project", project.Name).
			Msg("Project synchronization failed")
		res.Fail(err)
	}

	res.Duration = time.Since(start)
	return res
}

func (s *Synchronizer) sync(ctx context.Context, project types.Project, res *types.ProjectResult) error {
	logger := s.logger.With().Str("project", project.Name).Logger()
	done := logging.LogOperationStart(logger, "sync")
	defer done()

	if rule, ok := s.config.Ignore.Match(project.Name, project.IgnorePath()); ok {
		logger.Info().Str("rule", rule.Raw).Msg("Project ignored")
		res.Outcome = types.OutcomeSkipped
		return nil
	}

	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "run cancelled")
	}

	path := project.ManifestPath()
	res.Manifest = path

	fresh, err := s.ensureManifest(ctx, logger, project, path)
	if err != nil {
		return err
	}

	m, err := manifest.Load(s.fs, path)
	if err != nil {
		return err
	}

	if fresh {
		applied := m.ApplyDefaults(s.config.Defaults)
		logger.Debug().Strs("fields", applied).Msg("Applied metadata defaults")
	}

	deps, err := lockfile.Extract(s.fs, project.Path)
	if err != nil {
		return err
	}

	for _, fw := range deps.Frameworks() {
		for _, id := range deps.Packages(fw) {
			logger.Info().
				Str("package", id).
				Str("version", deps[fw][id]).
				Str("framework", fw).
				Msgf("adding %s to %s", id, fw)
		}
	}
	m.SetDependencies(deps)
	res.Frameworks = len(deps)
	res.Packages = deps.PackageCount()

	if err := manifest.Save(s.fs, path, m); err != nil {
		return err
	}

	if fresh {
		res.Outcome = types.OutcomeCreated
	} else {
		res.Outcome = types.OutcomeUpdated
	}
	return nil
}

// ensureManifest generates the manifest skeleton when none exists and
// reports whether it did.
func (s *Synchronizer) ensureManifest(ctx context.Context, logger zerolog.Logger, project types.Project, path string) (bool, error) {
	_, err := s.fs.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, errors.Wrap(err, errors.ErrFileAccess, "cannot access manifest").
			WithDetail("path", path)
	}

	logger.Info().Str("manifest", path).Msg("manifest missing, generating")

	if s.generator == nil {
		return false, errors.New(errors.ErrToolInvocation, "no packaging tool configured")
	}

	code, output, err := s.generator.GenerateSkeleton(ctx, project.Path)
	if err != nil {
		return false, err
	}
	if code != 0 {
		return false, errors.Newf(errors.ErrToolInvocation, "packaging tool exited with code %d: %s", code, output).
			WithDetail("exitCode", code).
			WithDetail("output", output)
	}

	if _, err := s.fs.Stat(path); err != nil {
		return false, errors.Newf(errors.ErrManifestParse, "packaging tool did not create %s", path).
			WithDetail("path", path).
			WithDetail("output", output)
	}
	return true, nil
}
