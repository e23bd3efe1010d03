// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate solution trees for synchronization tests

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/nuspecmaker/pkg/config"
	"github.com/arthur-debert/nuspecmaker/pkg/filesystem"
	"github.com/arthur-debert/nuspecmaker/pkg/lockfile"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// SolutionEnv is a solution root populated for a test
type SolutionEnv struct {
	// Root is the solution root directory
	Root string
	// FS holds the solution tree
	FS types.FS
	// Generator writes skeletons into FS when a manifest is missing
	Generator *FakeGenerator
	// Type of the environment
	Type EnvType

	t *testing.T
}

// ProjectConfig describes a project to create
type ProjectConfig struct {
	// Dir is the project directory relative to the root (default src/<name>)
	Dir string
	// Lock is the lock file content; empty means no lock file
	Lock string
	// Manifest is an existing manifest; empty means none
	Manifest string
}

// FileTree represents a directory structure for testing
type FileTree map[string]interface{}

// NewSolution creates an empty solution root
func NewSolution(t *testing.T, envType EnvType) *SolutionEnv {
	t.Helper()

	env := &SolutionEnv{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.Root = "/virtual/solution"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.Root = filepath.Join(t.TempDir(), "solution")
		env.FS = filesystem.NewOS()
	}

	if err := env.FS.MkdirAll(env.Root, 0755); err != nil {
		t.Fatalf("Failed to create solution root: %v", err)
	}

	env.Generator = &FakeGenerator{FS: env.FS, Content: Skeleton}
	t.Setenv(config.EnvPrefix+"NUGET", "")

	return env
}

// WriteConfig writes nuspec.config with the given content
func (env *SolutionEnv) WriteConfig(content string) {
	env.t.Helper()
	env.WriteFile(config.FileName, content)
}

// WriteDefaultConfig writes the bootstrap settings file
func (env *SolutionEnv) WriteDefaultConfig() {
	env.t.Helper()
	env.WriteConfig(string(config.DefaultContent()))
}

// AddTool places a stand-in packaging tool at <root>/nuget.exe
func (env *SolutionEnv) AddTool() string {
	env.t.Helper()
	env.WriteFile(config.DefaultToolName, "stand-in packaging tool")
	return filepath.Join(env.Root, config.DefaultToolName)
}

// Configure writes the default settings and the stand-in tool
func (env *SolutionEnv) Configure() {
	env.t.Helper()
	env.WriteDefaultConfig()
	env.AddTool()
}

// AddProject creates a project directory with optional lock file and
// manifest and returns the project
func (env *SolutionEnv) AddProject(name string, cfg ProjectConfig) types.Project {
	env.t.Helper()

	dir := cfg.Dir
	if dir == "" {
		dir = filepath.Join("src", name)
	}
	project := types.Project{Name: name, Path: filepath.Join(env.Root, dir)}

	if err := env.FS.MkdirAll(filepath.Join(project.Path, "obj"), 0755); err != nil {
		env.t.Fatalf("Failed to create project directory: %v", err)
	}
	if cfg.Lock != "" {
		env.writeAbs(lockfile.PathFor(project.Path), cfg.Lock)
	}
	if cfg.Manifest != "" {
		env.writeAbs(project.ManifestPath(), cfg.Manifest)
	}

	return project
}

// WriteFile writes a file relative to the root, creating parents
func (env *SolutionEnv) WriteFile(rel, content string) {
	env.t.Helper()
	env.writeAbs(filepath.Join(env.Root, rel), content)
}

// ReadFile reads a file relative to the root, or an absolute path
func (env *SolutionEnv) ReadFile(path string) string {
	env.t.Helper()
	if !filepath.IsAbs(path) {
		path = filepath.Join(env.Root, path)
	}
	data, err := env.FS.ReadFile(path)
	if err != nil {
		env.t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}

// WithFileTree creates a complete file tree structure under the root
func (env *SolutionEnv) WithFileTree(tree FileTree) {
	env.t.Helper()
	createFileTree(env.t, env.FS, env.Root, tree)
}

func (env *SolutionEnv) writeAbs(path, content string) {
	env.t.Helper()
	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create directory %s: %v", filepath.Dir(path), err)
	}
	if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

// createFileTree recursively creates a file tree
func createFileTree(t *testing.T, fs types.FS, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", filepath.Dir(fullPath), err)
			}
			if err := fs.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := fs.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			createFileTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
