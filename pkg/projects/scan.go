package projects

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/logging"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
)

// skipDirs are never descended into while scanning
var skipDirs = map[string]bool{
	"bin":          true,
	"obj":          true,
	"node_modules": true,
	"packages":     true,
}

// Scan walks root for project files. Each project file found yields a
// project named after the file, ordered by path.
func Scan(fsys types.FS, root string) ([]types.Project, error) {
	logger := logging.GetLogger("projects.scan")

	var projects []types.Project
	if err := scanDir(fsys, root, &projects); err != nil {
		return nil, err
	}

	logger.Debug().Str("root", root).Int("count", len(projects)).Msg("Scanned for projects")
	return projects, nil
}

func scanDir(fsys types.FS, dir string, out *[]types.Project) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.Wrap(err, errors.ErrProjectDiscovery, "cannot read directory").
			WithDetail("path", dir)
	}

	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if strings.HasPrefix(name, ".") || skipDirs[strings.ToLower(name)] {
				continue
			}
			subdirs = append(subdirs, filepath.Join(dir, name))
			continue
		}
		if isProjectFile(name) {
			*out = append(*out, types.Project{
				Name: strings.TrimSuffix(name, filepath.Ext(name)),
				Path: dir,
				File: filepath.Join(dir, name),
			})
		}
	}

	for _, sub := range subdirs {
		if err := scanDir(fsys, sub, out); err != nil {
			return err
		}
	}
	return nil
}
