// Package issuemanager provides the orchestration layer for recurring issue runs.
package issuemanager

import (
	"context"
	"fmt"

	"github.com/lerenn/issue-manager/pkg/dependencies"
	"github.com/lerenn/issue-manager/pkg/inputs"
	"github.com/lerenn/issue-manager/pkg/logger"
)

// IssueManager interface provides recurring issue automation functionality.
type IssueManager interface {
	// Run executes one series run: create the new issue and update the
	// previous occurrence according to the inputs.
	Run(ctx context.Context, in inputs.Inputs) (RunResult, error)
	// ValidateInputs checks the run inputs without touching the forge.
	ValidateInputs(in inputs.Inputs) error
	// Init initializes IM configuration.
	Init(opts InitOpts) error
	// SetLogger sets the logger for this IM instance.
	SetLogger(logger logger.Logger)
}

// NewIssueManagerParams contains parameters for creating a new IssueManager instance.
type NewIssueManagerParams struct {
	Dependencies *dependencies.Dependencies
}

type realIssueManager struct {
	deps *dependencies.Dependencies
}

// NewIssueManager creates a new IssueManager instance.
func NewIssueManager(params NewIssueManagerParams) (IssueManager, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	return &realIssueManager{
		deps: deps,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (im *realIssueManager) VerbosePrint(msg string, args ...interface{}) {
	if im.deps.Logger != nil {
		im.deps.Logger.Logf(fmt.Sprintf(msg, args...))
	}
}

// SetLogger sets the logger for this IssueManager instance.
func (im *realIssueManager) SetLogger(logger logger.Logger) {
	im.deps.Logger = logger
}
