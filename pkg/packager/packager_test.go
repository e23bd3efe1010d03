// pkg/packager/packager_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: /bin/sh
// PURPOSE: Test running the packaging tool as a subprocess

package packager

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// The tool's output is copied by goroutines owned by exec.Cmd; none may
// survive a finished or timed out run.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeTool(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script tools are not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "fake-nuget")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755))
	return path
}

func TestGenerateSkeleton_Success(t *testing.T) {
	tool := writeTool(t, `echo "args: $*"
echo '<package><metadata/></package>' > Foo.nuspec`)
	projectDir := t.TempDir()

	code, out, err := NewToolGenerator(tool).GenerateSkeleton(context.Background(), projectDir)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "args: spec -Force -NonInteractive")

	_, err = os.Stat(filepath.Join(projectDir, "Foo.nuspec"))
	assert.NoError(t, err, "tool runs in the project directory")
}

func TestGenerateSkeleton_NonZeroExit(t *testing.T) {
	tool := writeTool(t, `echo "Unable to find project"
echo "details" >&2
exit 3`)

	code, out, err := NewToolGenerator(tool).GenerateSkeleton(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Contains(t, out, "Unable to find project")
	assert.Contains(t, out, "details")
}

func TestGenerateSkeleton_Timeout(t *testing.T) {
	tool := writeTool(t, "exec sleep 5")

	start := time.Now()
	code, _, err := NewToolGenerator(tool).
		WithTimeout(100*time.Millisecond).
		GenerateSkeleton(context.Background(), t.TempDir())

	require.Error(t, err)
	assert.Equal(t, -1, code)
	assert.True(t, errors.IsErrorCode(err, errors.ErrToolInvocation))
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestGenerateSkeleton_MissingTool(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("path layout differs on windows")
	}
	tool := filepath.Join(t.TempDir(), "does-not-exist")

	code, _, err := NewToolGenerator(tool).GenerateSkeleton(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Equal(t, -1, code)
	assert.True(t, errors.IsErrorCode(err, errors.ErrToolInvocation))
}

func TestGenerateSkeleton_MissingProjectDir(t *testing.T) {
	tool := writeTool(t, "exit 0")

	_, _, err := NewToolGenerator(tool).GenerateSkeleton(context.Background(), "/no/such/project/dir")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestCommandLine(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("mono is never used on windows")
	}

	orig := lookPath
	t.Cleanup(func() { lookPath = orig })

	t.Run("exe_through_mono", func(t *testing.T) {
		lookPath = func(string) (string, error) { return "/usr/bin/mono", nil }
		name, args := commandLine("/sln/nuget.exe")
		assert.Equal(t, "/usr/bin/mono", name)
		assert.Equal(t, []string{"/sln/nuget.exe", "spec", "-Force", "-NonInteractive"}, args)
	})

	t.Run("exe_without_mono", func(t *testing.T) {
		lookPath = func(string) (string, error) { return "", os.ErrNotExist }
		name, args := commandLine("/sln/NuGet.EXE")
		assert.Equal(t, "/sln/NuGet.EXE", name)
		assert.Equal(t, SpecArgs, args)
	})

	t.Run("native_tool", func(t *testing.T) {
		lookPath = func(string) (string, error) { return "/usr/bin/mono", nil }
		name, _ := commandLine("/usr/local/bin/nuget")
		assert.Equal(t, "/usr/local/bin/nuget", name)
	})

	t.Run("dot_in_directory", func(t *testing.T) {
		assert.Equal(t, "", extension("/opt/tools.exe/nuget"))
	})
}
