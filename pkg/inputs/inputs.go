// Package inputs defines the options of a single issue creation run.
package inputs

// Project type values accepted by the Project/Column options.
const (
	ProjectTypeRepository   = "repository"
	ProjectTypeOrganization = "organization"
	ProjectTypeUser         = "user"
)

// Inputs holds every option recognized by a run. The zero value is a valid
// starting point: only Title is mandatory, everything else is opt-in.
type Inputs struct {
	// Title is the title of the new issue.
	Title string `yaml:"title"`

	// Body is the body template of the new issue (text/template syntax).
	Body string `yaml:"body,omitempty"`

	// Labels are applied to the new issue and identify the series when
	// looking up the previous issue.
	Labels []string `yaml:"labels,omitempty"`

	// Assignees is the ordered rotation list.
	Assignees []string `yaml:"assignees,omitempty"`

	// Pinned pins the new issue and unpins the previous one.
	Pinned bool `yaml:"pinned,omitempty"`

	// ClosePrevious closes the previous issue in the series.
	ClosePrevious bool `yaml:"close_previous,omitempty"`

	// LinkedComments cross-links the previous and new issues with comments.
	LinkedComments bool `yaml:"linked_comments,omitempty"`

	// RotateAssignees assigns the issue to the successor of the previous
	// issue's assignee in the Assignees list.
	RotateAssignees bool `yaml:"rotate_assignees,omitempty"`

	// Project is the classic project number to file the issue into (0 = none).
	Project int `yaml:"project,omitempty"`

	// ProjectType is the scope of Project: repository (default),
	// organization or user.
	ProjectType string `yaml:"project_type,omitempty"`

	// Column is the name of the project column (exact, case-sensitive).
	Column string `yaml:"column,omitempty"`

	// Milestone is the milestone number to add the issue to (0 = none).
	Milestone int `yaml:"milestone,omitempty"`
}

// NeedsPreviousIssue reports whether the run must look up the previous issue
// of the series. It is true when any option refers to it.
func (i Inputs) NeedsPreviousIssue() bool {
	return i.Pinned || i.ClosePrevious || i.LinkedComments || i.RotateAssignees
}

// ResolvedProjectType returns ProjectType, defaulting to repository.
func (i Inputs) ResolvedProjectType() string {
	if i.ProjectType == "" {
		return ProjectTypeRepository
	}
	return i.ProjectType
}
