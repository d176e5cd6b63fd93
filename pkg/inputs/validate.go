package inputs

import "fmt"

// Validate checks that the inputs form a consistent run request. Options
// that need the previous issue of the series require labels, since labels
// are what identifies the series on the tracker.
func (i Inputs) Validate() error {
	if i.Title == "" {
		return ErrTitleRequired
	}

	hasLabels := len(i.Labels) > 0
	if i.Pinned && !hasLabels {
		return ErrPinnedRequiresLabels
	}
	if i.ClosePrevious && !hasLabels {
		return ErrClosePreviousRequiresLabels
	}
	if i.LinkedComments && !hasLabels {
		return ErrLinkedCommentsRequiresLabels
	}
	if i.RotateAssignees {
		if !hasLabels {
			return ErrRotateRequiresLabels
		}
		if len(i.Assignees) == 0 {
			return ErrRotateRequiresAssignees
		}
	}

	switch i.ProjectType {
	case "", ProjectTypeRepository, ProjectTypeOrganization, ProjectTypeUser:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidProjectType, i.ProjectType)
	}

	return nil
}
