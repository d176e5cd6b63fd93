// Package forge provides issue tracker clients behind a common interface.
package forge

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lerenn/issue-manager/pkg/issue"
	"github.com/lerenn/issue-manager/pkg/logger"
	"golang.org/x/oauth2"
)

//go:generate mockgen -source=forge.go -destination=mockforge.gen.go -package=forge

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge.
	Name() string

	// PreviousIssue returns the most recent open issue carrying every label,
	// or an absent issue when the series has no previous occurrence.
	PreviousIssue(ctx context.Context, labels []string) (*issue.Issue, error)

	// CreateIssue opens a new issue.
	CreateIssue(ctx context.Context, req CreateIssueRequest) (*issue.Issue, error)

	// CloseIssue closes the issue.
	CloseIssue(ctx context.Context, number int) error

	// CreateComment adds a comment to the issue.
	CreateComment(ctx context.Context, number int, body string) error

	// AddToMilestone files the issue into the milestone.
	AddToMilestone(ctx context.Context, number, milestone int) error

	// AddToProjectColumn files the issue as a card in a project column.
	AddToProjectColumn(ctx context.Context, req ProjectCardRequest) error

	// IsPinned reports whether the issue node is currently pinned.
	IsPinned(ctx context.Context, nodeID string) (bool, error)

	// Pin pins the issue node to the repository.
	Pin(ctx context.Context, nodeID string) error

	// Unpin unpins the issue node. Unpinning an issue that is not pinned
	// is a no-op.
	Unpin(ctx context.Context, nodeID string) error
}

// CreateIssueRequest describes the issue to create. Empty fields are left
// out of the API call so tracker defaults apply.
type CreateIssueRequest struct {
	Title     string
	Body      string
	Labels    []string
	Assignees []string
}

// ProjectCardRequest describes where to file an issue on a classic project
// board.
type ProjectCardRequest struct {
	// IssueID is the tracker-internal id of the issue to file.
	IssueID int64

	// Project is the project number.
	Project int

	// ProjectType is the scope the project lives in: ProjectTypeRepository,
	// ProjectTypeOrganization or ProjectTypeUser.
	ProjectType string

	// Column is the column name, matched exactly.
	Column string
}

// Manager manages forge implementations and provides a unified interface.
type Manager struct {
	forges map[string]Forge
	logger logger.Logger
}

// NewManagerParams holds the parameters shared by every forge registration.
type NewManagerParams struct {
	Repository  Repository
	Logger      logger.Logger
	TokenSource oauth2.TokenSource
	APIBaseURL  string
	GraphQLURL  string
	HTTPClient  *http.Client
}

// NewManager creates a new forge manager with registered forge implementations.
func NewManager(params NewManagerParams) (*Manager, error) {
	m := &Manager{
		forges: make(map[string]Forge),
		logger: params.Logger,
	}

	// Register forge implementations
	if err := m.registerForges(params); err != nil {
		return nil, err
	}

	return m, nil
}

// registerForges registers all available forge implementations.
func (m *Manager) registerForges(params NewManagerParams) error {
	// Register GitHub forge
	github, err := NewGitHub(NewGitHubParams{
		Repository:  params.Repository,
		Logger:      params.Logger,
		TokenSource: params.TokenSource,
		APIBaseURL:  params.APIBaseURL,
		GraphQLURL:  params.GraphQLURL,
		HTTPClient:  params.HTTPClient,
	})
	if err != nil {
		return err
	}
	m.forges[github.Name()] = github

	return nil
}

// GetForge returns the forge implementation for the given name.
func (m *Manager) GetForge(name string) (Forge, error) {
	forge, exists := m.forges[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, name)
	}
	return forge, nil
}
