package projects

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/filesystem"
	"github.com/arthur-debert/nuspecmaker/pkg/logging"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
)

// Options selects where projects are discovered from
type Options struct {
	// SolutionRoot anchors relative paths and the fallback scan
	SolutionRoot string
	// Args are explicit project references (optional)
	Args []string
	// ListFile is a YAML or TOML project list (optional)
	ListFile string
	// SolutionFile is a .sln file (optional)
	SolutionFile string
	// FileSystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// Discover returns the projects to synchronize, in run order
func Discover(opts Options) ([]types.Project, error) {
	logger := logging.GetLogger("projects")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	var (
		projects []types.Project
		source   string
		err      error
	)

	switch {
	case len(opts.Args) > 0:
		source = "args"
		projects, err = FromArgs(fsys, opts.SolutionRoot, opts.Args)
	case opts.ListFile != "":
		source = "list"
		projects, err = FromListFile(fsys, opts.SolutionRoot, opts.ListFile)
	default:
		sln := opts.SolutionFile
		if sln == "" {
			sln, err = FindSolution(fsys, opts.SolutionRoot)
			if err != nil {
				return nil, err
			}
		}
		if sln != "" {
			source = "solution"
			projects, err = FromSolution(fsys, opts.SolutionRoot, sln)
		} else {
			source = "scan"
			projects, err = Scan(fsys, opts.SolutionRoot)
		}
	}
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("source", source).
		Int("count", len(projects)).
		Msg("Discovered projects")

	return projects, nil
}

// FromArgs resolves explicit project references. Each argument is
// "Name=path", a project file, or a project directory.
func FromArgs(fsys types.FS, root string, args []string) ([]types.Project, error) {
	projects := make([]types.Project, 0, len(args))
	for _, arg := range args {
		p, err := parseArg(root, arg)
		if err != nil {
			return nil, err
		}
		if err := checkDir(fsys, p); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func parseArg(root, arg string) (types.Project, error) {
	name, path, named := strings.Cut(arg, "=")
	if !named {
		path = arg
		name = ""
	}
	if strings.TrimSpace(path) == "" {
		return types.Project{}, errors.Newf(errors.ErrProjectDiscovery, "project %q has no path", arg)
	}
	return resolve(root, name, path), nil
}

// resolve turns a name and a directory or project file path into a Project
func resolve(root, name, path string) types.Project {
	path = normalize(path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	path = filepath.Clean(path)

	var file string
	if isProjectFile(path) {
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		file = path
		path = filepath.Dir(path)
	}
	if name == "" {
		name = filepath.Base(path)
	}
	return types.Project{Name: name, Path: path, File: file}
}

func checkDir(fsys types.FS, p types.Project) error {
	info, err := fsys.Stat(p.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Newf(errors.ErrProjectDiscovery, "project directory not found: %s", p.Path).
				WithDetail("project", p.Name)
		}
		return errors.Wrap(err, errors.ErrProjectDiscovery, "cannot access project directory").
			WithDetail("project", p.Name)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrProjectDiscovery, "project path is not a directory: %s", p.Path).
			WithDetail("project", p.Name)
	}
	return nil
}

// isProjectFile reports whether path names an MSBuild project (*.csproj,
// *.fsproj, *.vbproj and similar)
func isProjectFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return len(ext) > len(".proj") && strings.HasSuffix(ext, "proj")
}

// normalize converts Windows separators so solution and list files written
// on Windows resolve on every platform
func normalize(path string) string {
	return filepath.FromSlash(strings.ReplaceAll(path, `\`, "/"))
}
