// Package issue provides data structures and error types for handling forge issues.
package issue

import "errors"

// Issue-specific error types.
var (
	ErrIssueNotFound      = errors.New("issue not found")
	ErrInvalidIssueNumber = errors.New("invalid issue number")
)
