// Package template renders issue bodies from user-provided templates.
package template

import "errors"

// Template-specific error types.
var (
	ErrTemplateParse   = errors.New("failed to parse body template")
	ErrTemplateExecute = errors.New("failed to execute body template")
)
