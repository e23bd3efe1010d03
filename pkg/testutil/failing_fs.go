package testutil

import (
	"io/fs"

	"github.com/arthur-debert/nuspecmaker/pkg/types"
)

// FailingWriteFS wraps a filesystem and rejects writes to chosen paths
type FailingWriteFS struct {
	types.FS
	paths map[string]bool
}

// NewFailingWriteFS fails writes to any of paths
func NewFailingWriteFS(base types.FS, paths ...string) *FailingWriteFS {
	f := &FailingWriteFS{FS: base, paths: map[string]bool{}}
	for _, p := range paths {
		f.paths[p] = true
	}
	return f
}

// WriteFile returns a permission error for the chosen paths
func (f *FailingWriteFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if f.paths[name] {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrPermission}
	}
	return f.FS.WriteFile(name, data, perm)
}
