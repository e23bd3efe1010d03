// Package packager runs the external packaging tool that writes a manifest
// skeleton for a project.
package packager

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single tool invocation
const DefaultTimeout = 5 * time.Minute

// SpecArgs are the arguments that make the tool write <project>.nuspec into
// its working directory, replacing any existing file without prompting.
var SpecArgs = []string{"spec", "-Force", "-NonInteractive"}

// lookPath is swapped in tests
var lookPath = exec.LookPath

// ToolGenerator implements types.SkeletonGenerator with a subprocess
type ToolGenerator struct {
	logger  zerolog.Logger
	tool    string
	timeout time.Duration
}

// NewToolGenerator creates a generator for the tool at toolPath
func NewToolGenerator(toolPath string) *ToolGenerator {
	return &ToolGenerator{
		logger:  logging.GetLogger("packager"),
		tool:    toolPath,
		timeout: DefaultTimeout,
	}
}

// WithTimeout sets the per-invocation timeout
func (g *ToolGenerator) WithTimeout(d time.Duration) *ToolGenerator {
	g.timeout = d
	return g
}

// GenerateSkeleton runs the tool in projectDir and returns its exit code
// and combined output. A non-zero exit is not an error here; err is set
// only when the tool could not be run to completion.
func (g *ToolGenerator) GenerateSkeleton(ctx context.Context, projectDir string) (int, string, error) {
	if _, err := os.Stat(projectDir); err != nil {
		return -1, "", errors.Wrapf(err, errors.ErrFileAccess,
			"project directory does not exist: %s", projectDir)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	name, args := commandLine(g.tool)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = projectDir
	cmd.Env = os.Environ()

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	logging.LogCommand(name, args)
	g.logger.Debug().Str("workingDir", projectDir).Msg("Packaging tool started")

	err := cmd.Run()
	out := output.String()

	if ctx.Err() != nil {
		return -1, out, errors.Wrapf(ctx.Err(), errors.ErrToolInvocation,
			"packaging tool did not finish: %s", g.tool).
			WithDetail("output", out)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			g.logger.Debug().
				Int("exitCode", exitErr.ExitCode()).
				Str("output", out).
				Msg("Packaging tool failed")
			return exitErr.ExitCode(), out, nil
		}
		return -1, out, errors.Wrapf(err, errors.ErrToolInvocation,
			"cannot run packaging tool: %s", g.tool)
	}

	g.logger.Trace().Str("output", out).Msg("Packaging tool output")
	return 0, out, nil
}

// commandLine builds the invocation. Outside Windows a .exe tool is run
// through mono when mono is installed.
func commandLine(tool string) (string, []string) {
	args := append([]string{}, SpecArgs...)
	if runtime.GOOS == "windows" || !strings.EqualFold(extension(tool), ".exe") {
		return tool, args
	}
	mono, err := lookPath("mono")
	if err != nil {
		return tool, args
	}
	return mono, append([]string{tool}, args...)
}

func extension(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 || strings.ContainsAny(path[i:], `/\`) {
		return ""
	}
	return path[i:]
}
