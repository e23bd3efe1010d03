package manifest

import (
	"io/fs"

	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
)

// Load reads and parses the manifest at path
func Load(fsys types.FS, path string) (*Manifest, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrManifestParse, "manifest not found: %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read manifest").
			WithDetail("path", path)
	}

	m, err := Parse(data)
	if err != nil {
		if nerr, ok := err.(*errors.NuspecError); ok {
			nerr.WithDetail("path", path)
		}
		return nil, err
	}
	return m, nil
}

// Save overwrites the manifest at path
func Save(fsys types.FS, path string, m *Manifest) error {
	data, err := m.Bytes()
	if err != nil {
		return err
	}
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrManifestWrite, "cannot write manifest").
			WithDetail("path", path)
	}
	return nil
}
