package types

import (
	"context"
	"io/fs"
)

// FS is the filesystem interface required for manifest synchronization
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Remove(name string) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
}

// SkeletonGenerator bootstraps a manifest in a project directory. The
// packaging tool is expected to leave <project>.nuspec behind on success.
// A non-nil error means the tool could not be run at all; a tool that ran
// and failed reports a non-zero exit code together with its captured output.
type SkeletonGenerator interface {
	GenerateSkeleton(ctx context.Context, projectDir string) (exitCode int, output string, err error)
}
