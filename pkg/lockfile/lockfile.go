package lockfile

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/logging"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
)

// RelativePath is the lock file location under a project directory
var RelativePath = filepath.Join("obj", "project.assets.json")

// PackageTarget is the resolution kind of entries that become dependencies
const PackageTarget = "Package"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Missing sections decode to nil pointers so they can be told apart from
// empty ones.
type assetsFile struct {
	Project *projectEntry `json:"project"`
}

type projectEntry struct {
	Frameworks *map[string]frameworkEntry `json:"frameworks"`
}

type frameworkEntry struct {
	Dependencies map[string]dependencyEntry `json:"dependencies"`
}

type dependencyEntry struct {
	Target  *string `json:"target"`
	Version string  `json:"version"`
}

// PathFor returns the lock file location for a project directory
func PathFor(projectDir string) string {
	return filepath.Join(projectDir, RelativePath)
}

// Extract reads the project's lock file and returns its package
// dependencies per target framework.
func Extract(fsys types.FS, projectDir string) (types.DependencyMap, error) {
	logger := logging.GetLogger("lockfile")

	path := PathFor(projectDir)
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Newf(errors.ErrLockFileNotFound,
				"lock file not found, build the project first: %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read lock file").
			WithDetail("path", path)
	}

	deps, err := Parse(data)
	if err != nil {
		var nerr *errors.NuspecError
		if errors.As(err, &nerr) {
			nerr.WithDetail("path", path)
		}
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("frameworks", len(deps)).
		Int("packages", deps.PackageCount()).
		Msg("Lock file parsed")

	return deps, nil
}

// Parse decodes lock file content. Frameworks without package entries are
// kept as empty maps. A missing project or project.frameworks section, or a
// dependency without a target, is ErrLockFileParse.
func Parse(data []byte) (types.DependencyMap, error) {
	var assets assetsFile
	if err := json.Unmarshal(bytes.TrimPrefix(data, utf8BOM), &assets); err != nil {
		return nil, errors.Wrap(err, errors.ErrLockFileParse, "malformed lock file")
	}

	if assets.Project == nil {
		return nil, errors.New(errors.ErrLockFileParse, "lock file has no project section")
	}
	if assets.Project.Frameworks == nil {
		return nil, errors.New(errors.ErrLockFileParse, "lock file has no project.frameworks section")
	}
	frameworks := *assets.Project.Frameworks

	deps := make(types.DependencyMap, len(frameworks))
	for framework, entry := range frameworks {
		packages := make(map[string]string)
		for name, dep := range entry.Dependencies {
			if dep.Target == nil {
				return nil, errors.Newf(errors.ErrLockFileParse,
					"dependency %s for %s has no target", name, framework).
					WithDetail("package", name).
					WithDetail("framework", framework)
			}
			if *dep.Target != PackageTarget {
				continue
			}
			version, err := ParseVersion(dep.Version)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrVersionFormat,
					"package %s for %s", name, framework).
					WithDetail("package", name).
					WithDetail("framework", framework)
			}
			packages[name] = version
		}
		deps[framework] = packages
	}
	return deps, nil
}

// ParseVersion extracts X from a minimum-only range "[X, )". Exact pins,
// upper bounds and unbracketed versions are errors.
func ParseVersion(rng string) (string, error) {
	if !strings.HasPrefix(rng, "[") {
		return "", errors.Newf(errors.ErrVersionFormat, "version range %q has no opening bracket", rng).
			WithDetail("range", rng)
	}

	comma := strings.IndexByte(rng, ',')
	if comma < 0 {
		return "", errors.Newf(errors.ErrVersionFormat, "version range %q has no comma", rng).
			WithDetail("range", rng)
	}

	version := rng[1:comma]
	if strings.TrimSpace(version) == "" {
		return "", errors.Newf(errors.ErrVersionFormat, "version range %q has no lower bound", rng).
			WithDetail("range", rng)
	}

	if upper := strings.TrimSpace(rng[comma+1:]); upper != ")" {
		return "", errors.Newf(errors.ErrVersionFormat, "version range %q is not minimum-only", rng).
			WithDetail("range", rng)
	}

	return version, nil
}
