package projects

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// listFile is the layout of a project list:
//
//	projects:
//	  - name: Foo
//	    path: src/Foo
type listFile struct {
	Projects []types.Project `yaml:"projects" toml:"projects"`
}

// FromListFile reads a YAML (.yaml, .yml) or TOML (.toml) project list.
// Entries without a name take it from their path.
func FromListFile(fsys types.FS, root, path string) ([]types.Project, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProjectDiscovery, "cannot read project list").
			WithDetail("path", path)
	}

	var list listFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &list)
	case ".toml":
		err = toml.Unmarshal(data, &list)
	default:
		return nil, errors.Newf(errors.ErrProjectDiscovery,
			"unsupported project list format %q, use .yaml, .yml or .toml", filepath.Ext(path)).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProjectDiscovery, "malformed project list").
			WithDetail("path", path)
	}

	projects := make([]types.Project, 0, len(list.Projects))
	for i, entry := range list.Projects {
		if strings.TrimSpace(entry.Path) == "" {
			return nil, errors.Newf(errors.ErrProjectDiscovery, "project list entry %d has no path", i+1).
				WithDetail("path", path)
		}
		p := resolve(root, entry.Name, entry.Path)
		if err := checkDir(fsys, p); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}
