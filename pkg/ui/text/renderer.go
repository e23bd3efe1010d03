// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/arthur-debert/nuspecmaker/pkg/commands"
	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/style"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.RunResult:
		return r.renderRun(v)
	case *commands.DepsResult:
		return r.renderDeps(v)
	case *commands.ConfigReport:
		return r.renderConfig(v)
	case *commands.ConfigInitResult:
		return r.renderConfigInit(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderRun(res *types.RunResult) error {
	if len(res.Projects) > 0 {
		tw := tabwriter.NewWriter(r.output, 0, 0, 2, ' ', 0)
		for _, p := range res.Projects {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Outcome, p.Project.Name, style.ProjectDetail(p))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(r.output)
	}
	s := res.Summary
	_, err := fmt.Fprintf(r.output, "Synchronized %d project(s): %d created, %d updated, %d skipped, %d failed\n",
		s.Total, s.Created, s.Updated, s.Skipped, s.Failed)
	return err
}

func (r *Renderer) renderDeps(res *commands.DepsResult) error {
	if len(res.Dependencies) == 0 {
		_, err := fmt.Fprintf(r.output, "%s: no target frameworks\n", res.LockFile)
		return err
	}
	for _, fw := range res.Dependencies.Frameworks() {
		fmt.Fprintln(r.output, fw)
		ids := res.Dependencies.Packages(fw)
		if len(ids) == 0 {
			fmt.Fprintln(r.output, "  (no packages)")
		}
		for _, id := range ids {
			fmt.Fprintf(r.output, "  %s %s\n", id, res.Dependencies[fw][id])
		}
	}
	return nil
}

func (r *Renderer) renderConfig(rep *commands.ConfigReport) error {
	fmt.Fprintf(r.output, "config: %s\n", rep.Path)
	if rep.ToolError != "" {
		fmt.Fprintf(r.output, "tool:   %s (%s)\n", rep.Tool, rep.ToolError)
	} else {
		fmt.Fprintf(r.output, "tool:   %s\n", rep.ToolPath)
	}

	fmt.Fprintln(r.output, "global:")
	for _, field := range rep.Global.Fields() {
		value, _ := rep.Global.Lookup(field)
		fmt.Fprintf(r.output, "  %s = %s\n", field, value)
	}
	fmt.Fprintln(r.output, "ignore:")
	for _, rule := range rep.Ignore {
		fmt.Fprintf(r.output, "  %s\n", rule)
	}
	return nil
}

func (r *Renderer) renderConfigInit(res *commands.ConfigInitResult) error {
	var err error
	if res.Created {
		_, err = fmt.Fprintf(r.output, "created %s\n", res.Path)
	} else {
		_, err = fmt.Fprintf(r.output, "%s already exists, left unchanged\n", res.Path)
	}
	return err
}

// RenderError renders an error as plain text followed by its details
func (r *Renderer) RenderError(err error) error {
	if _, werr := fmt.Fprintf(r.output, "Error: %v\n", err); werr != nil {
		return werr
	}
	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, werr := fmt.Fprintf(r.output, "  %s: %v\n", k, details[k]); werr != nil {
			return werr
		}
	}
	return nil
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
