package types

import "path/filepath"

// ManifestExtension is the file extension of package manifests
const ManifestExtension = ".nuspec"

// Project identifies a build project by display name and directory.
// File is the project file when discovery found one.
type Project struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Path string `json:"path" yaml:"path" toml:"path"`
	File string `json:"file,omitempty" yaml:"-" toml:"-"`
}

// IgnorePath is the path ignore rules are tested against: the project
// file when known, the directory otherwise
func (p Project) IgnorePath() string {
	if p.File != "" {
		return p.File
	}
	return p.Path
}

// ManifestPath returns <Path>/<Name>.nuspec
func (p Project) ManifestPath() string {
	return filepath.Join(p.Path, p.Name+ManifestExtension)
}
