// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/nuspecmaker/pkg/commands"
	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/style"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using pterm tables and lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
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
		data := pterm.TableData{{"", "Project", "Outcome", "Detail"}}
		for _, p := range res.Projects {
			detail := style.ProjectDetail(p)
			if p.Outcome == types.OutcomeFailed {
				detail = style.ErrorStyle.Render(detail)
			} else {
				detail = style.MutedStyle.Render(detail)
			}
			data = append(data, []string{
				style.OutcomeIndicator(p.Outcome),
				style.Bold(p.Project.Name),
				style.Badge(p.Outcome),
				detail,
			})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(r.output, table)
		fmt.Fprintln(r.output)
	}
	_, err := fmt.Fprintln(r.output, style.RenderSummary(res.Summary))
	return err
}

func (r *Renderer) renderDeps(res *commands.DepsResult) error {
	fmt.Fprintln(r.output, style.PathStyle.Render(res.LockFile))
	if len(res.Dependencies) == 0 {
		_, err := fmt.Fprintln(r.output, style.Indent(style.MutedStyle.Render("no target frameworks"), 1))
		return err
	}
	for _, fw := range res.Dependencies.Frameworks() {
		fmt.Fprintln(r.output, style.Indent(style.FrameworkStyle.Render(fw), 1))
		ids := res.Dependencies.Packages(fw)
		if len(ids) == 0 {
			fmt.Fprintln(r.output, style.Indent(style.MutedStyle.Render("no packages"), 2))
		}
		for _, id := range ids {
			line := fmt.Sprintf("%s %s", id, style.MutedStyle.Render(res.Dependencies[fw][id]))
			fmt.Fprintln(r.output, style.Indent(line, 2))
		}
	}
	return nil
}

func (r *Renderer) renderConfig(rep *commands.ConfigReport) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", style.TitleStyle.Render("config"), style.PathStyle.Render(rep.Path))
	if rep.ToolError != "" {
		fmt.Fprintf(&b, "%s %s %s\n", style.TitleStyle.Render("tool"), style.CodeStyle.Render(rep.Tool),
			style.ErrorStyle.Render(rep.ToolError))
	} else {
		fmt.Fprintf(&b, "%s %s %s\n", style.TitleStyle.Render("tool"), style.SuccessIndicator,
			style.PathStyle.Render(rep.ToolPath))
	}

	b.WriteString(style.TitleStyle.Render("global") + "\n")
	for _, field := range rep.Global.Fields() {
		value, _ := rep.Global.Lookup(field)
		fmt.Fprintf(&b, "  %s = %s\n", style.CodeStyle.Render(field), value)
	}
	b.WriteString(style.TitleStyle.Render("ignore"))
	for _, rule := range rep.Ignore {
		fmt.Fprintf(&b, "\n  %s", rule)
	}

	_, err := fmt.Fprintln(r.output, style.BoxStyle.Render(b.String()))
	return err
}

func (r *Renderer) renderConfigInit(res *commands.ConfigInitResult) error {
	var err error
	if res.Created {
		_, err = fmt.Fprintf(r.output, "%s created %s\n", style.SuccessIndicator, style.PathStyle.Render(res.Path))
	} else {
		_, err = fmt.Fprintf(r.output, "%s %s already exists, left unchanged\n",
			style.InfoIndicator, style.PathStyle.Render(res.Path))
	}
	return err
}

// RenderError renders an error with its code and details
func (r *Renderer) RenderError(err error) error {
	msg := err.Error()
	var nerr *errors.NuspecError
	if errors.As(err, &nerr) {
		msg = nerr.Message
		if nerr.Wrapped != nil {
			msg = fmt.Sprintf("%s: %v", nerr.Message, nerr.Wrapped)
		}
	}
	if _, werr := fmt.Fprintf(r.output, "%s %s %s\n", style.ErrorIndicator, style.ErrorStyle.Render("Error:"), msg); werr != nil {
		return werr
	}
	if nerr == nil {
		return nil
	}

	fmt.Fprintln(r.output, style.Indent(style.MutedStyle.Render("code: "+string(nerr.Code)), 1))
	keys := make([]string, 0, len(nerr.Details))
	for k := range nerr.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		line := style.MutedStyle.Render(fmt.Sprintf("%s: %v", k, nerr.Details[k]))
		if _, werr := fmt.Fprintln(r.output, style.Indent(line, 1)); werr != nil {
			return werr
		}
	}
	return nil
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n", style.InfoIndicator, msg)
	return err
}
