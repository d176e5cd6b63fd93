package inputs

import "errors"

// Inputs-specific error types.
var (
	ErrTitleRequired                = errors.New("title is required")
	ErrPinnedRequiresLabels         = errors.New("pinned requires labels")
	ErrClosePreviousRequiresLabels  = errors.New("close_previous requires labels")
	ErrLinkedCommentsRequiresLabels = errors.New("linked_comments requires labels")
	ErrRotateRequiresLabels         = errors.New("rotate_assignees requires labels")
	ErrRotateRequiresAssignees      = errors.New("rotate_assignees requires assignees")
	ErrInvalidProjectType           = errors.New("invalid project type")
	ErrInputsFileRead               = errors.New("failed to read inputs file")
	ErrInputsFileParse              = errors.New("failed to parse inputs file")
)
