// pkg/commands/deps_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS
// PURPOSE: Test the dependency report and config commands

package commands_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/nuspecmaker/pkg/commands"
	"github.com/arthur-debert/nuspecmaker/pkg/config"
	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/testutil"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeps(t *testing.T) {
	env := testutil.NewSolution(t, testutil.EnvMemoryOnly)
	p := env.AddProject("Foo", testutil.ProjectConfig{Lock: newtonsoft()})
	env.WriteFile("src/Foo/Foo.csproj", "<Project/>")

	for _, target := range []string{p.Path, filepath.Join(p.Path, "Foo.csproj")} {
		result, err := commands.Deps(commands.DepsOptions{ProjectDir: target, FileSystem: env.FS})
		require.NoError(t, err)
		assert.Equal(t, p.Path, result.ProjectDir)
		assert.Equal(t, types.DependencyMap{"net6.0": {"Newtonsoft.Json": "13.0.1"}}, result.Dependencies)
	}
}

func TestDeps_NoLockFile(t *testing.T) {
	env := testutil.NewSolution(t, testutil.EnvMemoryOnly)
	p := env.AddProject("Foo", testutil.ProjectConfig{})

	_, err := commands.Deps(commands.DepsOptions{ProjectDir: p.Path, FileSystem: env.FS})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLockFileNotFound))
}

func TestInitConfig(t *testing.T) {
	env := testutil.NewSolution(t, testutil.EnvMemoryOnly)
	opts := commands.ConfigOptions{SolutionRoot: env.Root, FileSystem: env.FS}

	result, err := commands.InitConfig(opts)
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, filepath.Join(env.Root, config.FileName), result.Path)

	env.WriteConfig(`{"Nuget": "custom.exe"}`)
	result, err = commands.InitConfig(opts)
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, `{"Nuget": "custom.exe"}`, env.ReadFile(config.FileName))
}

func TestShowConfig(t *testing.T) {
	env := testutil.NewSolution(t, testutil.EnvMemoryOnly)
	opts := commands.ConfigOptions{SolutionRoot: env.Root, FileSystem: env.FS}

	_, err := commands.ShowConfig(opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	_, statErr := env.FS.Stat(filepath.Join(env.Root, config.FileName))
	assert.Error(t, statErr, "show never bootstraps")

	env.WriteConfig(testutil.ConfigFile("", map[string]string{"authors": "Me"}, "Legacy"))

	report, err := commands.ShowConfig(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"authors"}, report.Global.Fields())
	authors, _ := report.Global.Lookup("authors")
	assert.Equal(t, "Me", authors)
	assert.Equal(t, []string{"Legacy"}, report.Ignore)
	assert.Empty(t, report.ToolPath)
	assert.NotEmpty(t, report.ToolError)

	env.AddTool()
	report, err = commands.ShowConfig(opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(env.Root, config.DefaultToolName), report.ToolPath)
	assert.Empty(t, report.ToolError)
}
