package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/nuspecmaker/pkg/types"
	"github.com/pterm/pterm"
)

// OutcomeStyle returns the pterm style for a project outcome badge
func OutcomeStyle(outcome types.SyncOutcome) *pterm.Style {
	switch outcome {
	case types.OutcomeCreated:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgBlack)
	case types.OutcomeUpdated:
		return pterm.NewStyle(pterm.BgBlue, pterm.FgWhite)
	case types.OutcomeFailed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// OutcomeIndicator returns the one-character marker for an outcome
func OutcomeIndicator(outcome types.SyncOutcome) string {
	switch outcome {
	case types.OutcomeCreated, types.OutcomeUpdated:
		return SuccessIndicator
	case types.OutcomeFailed:
		return ErrorIndicator
	default:
		return SkippedIndicator
	}
}

// Badge renders the outcome as a fixed-width label
func Badge(outcome types.SyncOutcome) string {
	return OutcomeStyle(outcome).Sprint(fmt.Sprintf(" %-7s ", outcome))
}

// ProjectDetail describes a project result in a few words
func ProjectDetail(res types.ProjectResult) string {
	switch res.Outcome {
	case types.OutcomeSkipped:
		return "matched an ignore rule"
	case types.OutcomeFailed:
		return res.Error
	default:
		return fmt.Sprintf("%d package(s) across %d framework(s)", res.Packages, res.Frameworks)
	}
}

// RenderProjectLine renders one row of the run report
func RenderProjectLine(res types.ProjectResult) string {
	detail := ProjectDetail(res)
	if res.Outcome == types.OutcomeFailed {
		detail = ErrorStyle.Render(detail)
	} else {
		detail = MutedStyle.Render(detail)
	}
	return fmt.Sprintf("%s %s %s  %s", OutcomeIndicator(res.Outcome), Badge(res.Outcome), Bold(res.Project.Name), detail)
}

// RenderSummary renders the closing line of the run report
func RenderSummary(s types.RunSummary) string {
	parts := []string{
		SuccessStyle.Render(fmt.Sprintf("%d created", s.Created)),
		InfoStyle.Render(fmt.Sprintf("%d updated", s.Updated)),
		MutedStyle.Render(fmt.Sprintf("%d skipped", s.Skipped)),
	}
	failed := fmt.Sprintf("%d failed", s.Failed)
	if s.Failed > 0 {
		parts = append(parts, ErrorStyle.Render(failed))
	} else {
		parts = append(parts, MutedStyle.Render(failed))
	}
	return fmt.Sprintf("%s %d project(s): %s", TitleStyle.Render("Synchronized"), s.Total, strings.Join(parts, ", "))
}
