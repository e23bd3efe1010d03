package testutil

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/nuspecmaker/pkg/types"
)

// FakeGenerator implements types.SkeletonGenerator by writing Content to
// <projectDir>/<dir base>.nuspec, the file the real tool would produce
type FakeGenerator struct {
	FS      types.FS
	Content string

	// ExitCode and Output are returned from every call
	ExitCode int
	Output   string
	// Err makes every call fail
	Err error
	// SkipWrite reports success without writing a manifest
	SkipWrite bool

	// Calls records the project directories the generator ran in
	Calls []string
}

// GenerateSkeleton records the call and writes the manifest
func (g *FakeGenerator) GenerateSkeleton(_ context.Context, projectDir string) (int, string, error) {
	g.Calls = append(g.Calls, projectDir)
	if g.Err != nil {
		return -1, g.Output, g.Err
	}
	if g.ExitCode == 0 && !g.SkipWrite {
		path := filepath.Join(projectDir, filepath.Base(projectDir)+types.ManifestExtension)
		if err := g.FS.WriteFile(path, []byte(g.Content), 0644); err != nil {
			return -1, "", err
		}
	}
	return g.ExitCode, g.Output, nil
}
