package issuemanager

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lerenn/issue-manager/pkg/forge"
	"github.com/lerenn/issue-manager/pkg/inputs"
	"github.com/lerenn/issue-manager/pkg/issue"
	"github.com/lerenn/issue-manager/pkg/rotation"
	"github.com/lerenn/issue-manager/pkg/template"
)

// Comment texts linking the issues of a series together.
const (
	previousInSeriesFormat = "Previous in series: #%d"
	nextInSeriesFormat     = "Next in series: #%d"
)

// RunResult describes the outcome of a successful run.
type RunResult struct {
	RunID       string
	IssueNumber int
	IssueURL    string
}

// runStep is one post-creation step of a run. Steps execute sequentially
// and are not compensated: a failure aborts the remainder, and the run
// reports which steps had already completed.
type runStep struct {
	name string
	fn   func() error
}

// Run executes one series run.
func (im *realIssueManager) Run(ctx context.Context, in inputs.Inputs) (RunResult, error) {
	runID := uuid.New().String()
	im.VerbosePrint("Starting run %s for %q", runID, in.Title)

	if err := in.Validate(); err != nil {
		return RunResult{}, fmt.Errorf("%w: %w", ErrInvalidInputs, err)
	}

	previous, err := im.lookupPreviousIssue(ctx, in)
	if err != nil {
		return RunResult{}, err
	}

	// Rotation needs a previous occurrence to rotate away from. On the
	// first run of a series the full ordered list is kept.
	assignees := in.Assignees
	if in.RotateAssignees && previous.Exists() {
		assignees = rotation.Next(in.Assignees, previous.FirstAssignee())
		im.VerbosePrint("Rotated assignees to %s", strings.Join(assignees, ", "))
	}

	body, err := im.deps.Renderer.Render(in.Body, template.Context{
		PreviousIssueNumber: previous.Number,
		HasPrevious:         previous.Exists(),
		Assignees:           assignees,
	})
	if err != nil {
		return RunResult{}, err
	}

	created, err := im.deps.Forge.CreateIssue(ctx, forge.CreateIssueRequest{
		Title:     in.Title,
		Body:      body,
		Labels:    in.Labels,
		Assignees: assignees,
	})
	if err != nil {
		return RunResult{}, err
	}
	im.VerbosePrint("Created issue #%d (run %s)", created.Number, runID)

	if err := im.runPostCreateSteps(ctx, in, previous, created); err != nil {
		return RunResult{}, err
	}

	return RunResult{
		RunID:       runID,
		IssueNumber: created.Number,
		IssueURL:    created.URL,
	}, nil
}

// lookupPreviousIssue fetches the previous issue of the series when any
// input flag needs it. Absence is non-fatal.
func (im *realIssueManager) lookupPreviousIssue(ctx context.Context, in inputs.Inputs) (*issue.Issue, error) {
	if !in.NeedsPreviousIssue() {
		return issue.None(), nil
	}

	im.VerbosePrint("Looking up previous issue with labels %s", strings.Join(in.Labels, ", "))
	previous, err := im.deps.Forge.PreviousIssue(ctx, in.Labels)
	if err != nil {
		return nil, fmt.Errorf("failed to look up previous issue: %w", err)
	}
	if previous.Exists() {
		im.VerbosePrint("Found previous issue #%d", previous.Number)
	}

	return previous, nil
}

// buildPostCreateSteps assembles the post-creation sequence, gating each
// step on its input flags and on previous-issue existence.
func (im *realIssueManager) buildPostCreateSteps(
	ctx context.Context, in inputs.Inputs, previous, created *issue.Issue) []runStep {
	var steps []runStep

	if in.Project != 0 && in.Column != "" {
		steps = append(steps, runStep{
			name: "attach project column",
			fn: func() error {
				return im.deps.Forge.AddToProjectColumn(ctx, forge.ProjectCardRequest{
					IssueID:     created.ID,
					Project:     in.Project,
					ProjectType: in.ResolvedProjectType(),
					Column:      in.Column,
				})
			},
		})
	}

	if in.Milestone != 0 {
		steps = append(steps, runStep{
			name: "attach milestone",
			fn: func() error {
				return im.deps.Forge.AddToMilestone(ctx, created.Number, in.Milestone)
			},
		})
	}

	if in.LinkedComments && previous.Exists() {
		steps = append(steps,
			runStep{
				name: "comment new issue",
				fn: func() error {
					return im.deps.Forge.CreateComment(ctx, created.Number,
						fmt.Sprintf(previousInSeriesFormat, previous.Number))
				},
			},
			runStep{
				name: "comment previous issue",
				fn: func() error {
					return im.deps.Forge.CreateComment(ctx, previous.Number,
						fmt.Sprintf(nextInSeriesFormat, created.Number))
				},
			},
		)
	}

	// Pin handling stays inside the close-previous branch: a series that
	// does not close its previous occurrence never re-pins, and the first
	// run of a pinned series leaves the new issue unpinned.
	if in.ClosePrevious && previous.Exists() {
		steps = append(steps, runStep{
			name: "close previous issue",
			fn: func() error {
				return im.deps.Forge.CloseIssue(ctx, previous.Number)
			},
		})

		if in.Pinned {
			steps = append(steps,
				runStep{
					name: "unpin previous issue",
					fn: func() error {
						return im.deps.Forge.Unpin(ctx, previous.NodeID)
					},
				},
				runStep{
					name: "pin new issue",
					fn: func() error {
						return im.deps.Forge.Pin(ctx, created.NodeID)
					},
				},
			)
		}
	}

	return steps
}

// runPostCreateSteps executes the post-creation sequence. On failure the
// completed steps are logged so the partial tracker state can be traced.
func (im *realIssueManager) runPostCreateSteps(
	ctx context.Context, in inputs.Inputs, previous, created *issue.Issue) error {
	var completed []string

	for _, step := range im.buildPostCreateSteps(ctx, in, previous, created) {
		if err := step.fn(); err != nil {
			if len(completed) > 0 {
				im.deps.Logger.Warnf("issue #%d was created, completed steps before failure: %s",
					created.Number, strings.Join(completed, ", "))
			} else {
				im.deps.Logger.Warnf("issue #%d was created but no follow-up step completed", created.Number)
			}
			return fmt.Errorf("failed to %s: %w", step.name, err)
		}

		completed = append(completed, step.name)
		im.VerbosePrint("Completed step: %s", step.name)
	}

	return nil
}
