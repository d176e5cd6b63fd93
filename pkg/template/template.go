// Package template renders issue bodies from user-provided templates.
package template

import (
	"fmt"
	"strings"
	texttemplate "text/template"
)

//go:generate mockgen -source=template.go -destination=mocktemplate.gen.go -package=template

// Context carries the variables available to issue body templates.
type Context struct {
	// PreviousIssueNumber is the number of the previous issue in the series,
	// or a negative number when the series has no previous occurrence.
	PreviousIssueNumber int

	// HasPrevious reports whether PreviousIssueNumber refers to a real issue.
	// Templates should guard references to the previous issue with it.
	HasPrevious bool

	// Assignees holds the assignees the new issue will carry, after rotation.
	Assignees []string
}

// Renderer renders issue body templates.
type Renderer interface {
	// Render executes the body template with the given context.
	Render(body string, ctx Context) (string, error)
}

// textRenderer renders bodies with the standard text/template engine, with a
// join function for assignee lists.
type textRenderer struct{}

// NewRenderer creates a new text/template based renderer.
func NewRenderer() Renderer {
	return &textRenderer{}
}

// Render executes the body template with the given context. An empty body
// renders to an empty string without invoking the template engine.
func (r *textRenderer) Render(body string, ctx Context) (string, error) {
	if body == "" {
		return "", nil
	}

	tmpl, err := texttemplate.New("body").
		Funcs(texttemplate.FuncMap{"join": strings.Join}).
		Parse(body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTemplateParse, err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, ctx); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTemplateExecute, err)
	}

	return sb.String(), nil
}
