package types

import (
	"time"

	"github.com/arthur-debert/nuspecmaker/pkg/errors"
)

// SyncOutcome is what happened to a single project's manifest
type SyncOutcome string

const (
	OutcomeSkipped SyncOutcome = "skipped" // Matched an ignore rule
	OutcomeCreated SyncOutcome = "created" // Manifest generated then merged
	OutcomeUpdated SyncOutcome = "updated" // Existing manifest merged
	OutcomeFailed  SyncOutcome = "failed"  // Synchronization aborted for this project
)

// ProjectResult reports the synchronization of one project
type ProjectResult struct {
	Project    Project          `json:"project"`
	Outcome    SyncOutcome      `json:"outcome"`
	Manifest   string           `json:"manifest,omitempty"`
	Frameworks int              `json:"frameworks"`
	Packages   int              `json:"packages"`
	ErrorCode  errors.ErrorCode `json:"errorCode,omitempty"`
	Error      string           `json:"error,omitempty"`
	Duration   time.Duration    `json:"duration"`

	err error
}

// Fail marks the result as failed with err
func (r *ProjectResult) Fail(err error) {
	r.Outcome = OutcomeFailed
	r.ErrorCode = errors.GetErrorCode(err)
	r.Error = err.Error()
	r.err = err
}

// Err returns the error that failed the project, if any
func (r *ProjectResult) Err() error {
	return r.err
}

// RunSummary counts project outcomes
type RunSummary struct {
	Total   int `json:"total"`
	Skipped int `json:"skipped"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// RunResult is the outcome of synchronizing a list of projects
type RunResult struct {
	SolutionRoot string          `json:"solutionRoot"`
	ConfigPath   string          `json:"configPath"`
	ToolPath     string          `json:"toolPath,omitempty"`
	Projects     []ProjectResult `json:"projects"`
	Summary      RunSummary      `json:"summary"`
}

// Add appends a project result and updates the summary
func (r *RunResult) Add(res ProjectResult) {
	r.Projects = append(r.Projects, res)
	r.Summary.Total++
	switch res.Outcome {
	case OutcomeSkipped:
		r.Summary.Skipped++
	case OutcomeCreated:
		r.Summary.Created++
	case OutcomeUpdated:
		r.Summary.Updated++
	case OutcomeFailed:
		r.Summary.Failed++
	}
}

// HasFailures reports whether any project failed
func (r *RunResult) HasFailures() bool {
	return r.Summary.Failed > 0
}
