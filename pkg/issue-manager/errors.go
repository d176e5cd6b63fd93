package issuemanager

import "errors"

// Error definitions for issue manager operations.
var (
	ErrInvalidInputs = errors.New("invalid run inputs")
	ErrInitCancelled = errors.New("initialization cancelled by user")
)
