package forge

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/issue-manager/pkg/issue"
	"github.com/lerenn/issue-manager/pkg/logger"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

const (
	// GitHubName is the name of the GitHub forge.
	GitHubName = "github"

	// requestTimeout bounds a single forge operation.
	requestTimeout = 10 * time.Second

	// previousIssuePageSize is how many candidates the previous-issue
	// lookup fetches. Pull requests share the issue listing and are
	// skipped, so one result is not enough.
	previousIssuePageSize = 10

	// listPageSize is the page size used when walking project and
	// column listings.
	listPageSize = 100

	// projectCardContentType is the content type GitHub expects when
	// filing an issue on a classic project board.
	projectCardContentType = "Issue"
)

// Project scopes accepted by ProjectCardRequest.ProjectType.
const (
	ProjectTypeRepository   = "repository"
	ProjectTypeOrganization = "organization"
	ProjectTypeUser         = "user"
)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	repository Repository
	rest       *github.Client
	gql        GraphQLClient
	logger     logger.Logger
}

// NewGitHubParams contains parameters for creating a new GitHub forge instance.
type NewGitHubParams struct {
	Repository  Repository
	Logger      logger.Logger
	TokenSource oauth2.TokenSource

	// APIBaseURL overrides the REST endpoint, for GitHub Enterprise.
	APIBaseURL string

	// GraphQLURL overrides the GraphQL endpoint, for GitHub Enterprise.
	GraphQLURL string

	// HTTPClient overrides the transport. When nil, one is derived from
	// TokenSource, or the calls go out unauthenticated.
	HTTPClient *http.Client

	// GraphQL overrides the GraphQL client, for tests.
	GraphQL GraphQLClient
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub(params NewGitHubParams) (*GitHub, error) {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	httpClient := params.HTTPClient
	if httpClient == nil && params.TokenSource != nil {
		httpClient = oauth2.NewClient(context.Background(), params.TokenSource)
	}

	rest := github.NewClient(httpClient)
	if params.APIBaseURL != "" {
		var err error
		rest, err = rest.WithEnterpriseURLs(params.APIBaseURL, params.APIBaseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
		}
	}

	gql := params.GraphQL
	if gql == nil {
		if params.GraphQLURL != "" {
			gql = githubv4.NewEnterpriseClient(params.GraphQLURL, httpClient)
		} else {
			gql = githubv4.NewClient(httpClient)
		}
	}

	return &GitHub{
		repository: params.Repository,
		rest:       rest,
		gql:        gql,
		logger:     log,
	}, nil
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// PreviousIssue returns the most recent open issue carrying every label, or
// an absent issue when the series has no previous occurrence.
func (g *GitHub) PreviousIssue(ctx context.Context, labels []string) (*issue.Issue, error) {
	ctx, cancel := requestContext(ctx)
	defer cancel()

	opts := &github.IssueListByRepoOptions{
		Labels:      labels,
		State:       "open",
		Sort:        "created",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: previousIssuePageSize},
	}

	issues, resp, err := g.rest.Issues.ListByRepo(ctx, g.repository.Owner, g.repository.Name, opts)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, "failed to list issues")
	}

	for _, previous := range issues {
		if previous.IsPullRequest() {
			continue
		}
		return convertIssue(previous), nil
	}

	g.logger.Warnf("no open issue with labels %s found in %s", strings.Join(labels, ", "), g.repository)
	return issue.None(), nil
}

// CreateIssue opens a new issue.
func (g *GitHub) CreateIssue(ctx context.Context, req CreateIssueRequest) (*issue.Issue, error) {
	ctx, cancel := requestContext(ctx)
	defer cancel()

	created, resp, err := g.rest.Issues.Create(ctx, g.repository.Owner, g.repository.Name, buildIssueRequest(req))
	if err != nil {
		return nil, g.handleGitHubError(err, resp, "failed to create issue")
	}

	return convertIssue(created), nil
}

// CloseIssue closes the issue.
func (g *GitHub) CloseIssue(ctx context.Context, number int) error {
	ctx, cancel := requestContext(ctx)
	defer cancel()

	state := "closed"
	_, resp, err := g.rest.Issues.Edit(ctx, g.repository.Owner, g.repository.Name, number, &github.IssueRequest{
		State: &state,
	})
	if err != nil {
		return g.handleGitHubError(err, resp, fmt.Sprintf("failed to close issue #%d", number))
	}

	return nil
}

// CreateComment adds a comment to the issue.
func (g *GitHub) CreateComment(ctx context.Context, number int, body string) error {
	ctx, cancel := requestContext(ctx)
	defer cancel()

	_, resp, err := g.rest.Issues.CreateComment(ctx, g.repository.Owner, g.repository.Name, number, &github.IssueComment{
		Body: &body,
	})
	if err != nil {
		return g.handleGitHubError(err, resp, fmt.Sprintf("failed to comment on issue #%d", number))
	}

	return nil
}

// AddToMilestone files the issue into the milestone. An empty update result
// logs a warning and does not fail the run.
func (g *GitHub) AddToMilestone(ctx context.Context, number, milestone int) error {
	ctx, cancel := requestContext(ctx)
	defer cancel()

	updated, resp, err := g.rest.Issues.Edit(ctx, g.repository.Owner, g.repository.Name, number, &github.IssueRequest{
		Milestone: &milestone,
	})
	if err != nil {
		return g.handleGitHubError(err, resp, fmt.Sprintf("failed to add issue #%d to milestone %d", number, milestone))
	}

	if updated == nil || updated.Milestone == nil {
		g.logger.Warnf("milestone %d update on issue #%d returned an empty result", milestone, number)
	}

	return nil
}

// AddToProjectColumn files the issue as a card in a classic project column.
// A missing project or column logs a warning and leaves the issue unfiled.
func (g *GitHub) AddToProjectColumn(ctx context.Context, req ProjectCardRequest) error {
	ctx, cancel := requestContext(ctx)
	defer cancel()

	project, err := g.findProject(ctx, req.Project, req.ProjectType)
	if err != nil {
		return err
	}
	if project == nil {
		g.logger.Warnf("project %d (%s) not found in %s, skipping project assignment",
			req.Project, req.ProjectType, g.repository)
		return nil
	}

	column, err := g.findColumn(ctx, project.GetID(), req.Column)
	if err != nil {
		return err
	}
	if column == nil {
		g.logger.Warnf("column %q not found in project %d, skipping project assignment",
			req.Column, req.Project)
		return nil
	}

	_, resp, err := g.rest.Projects.CreateProjectCard(ctx, column.GetID(), &github.ProjectCardOptions{
		ContentID:   req.IssueID,
		ContentType: projectCardContentType,
	})
	if err != nil {
		return g.handleGitHubError(err, resp, fmt.Sprintf("failed to create project card in column %q", req.Column))
	}

	return nil
}

// findProject walks the project listing for the requested scope and returns
// the project with the given number, or nil when no project matches.
func (g *GitHub) findProject(ctx context.Context, number int, projectType string) (*github.Project, error) {
	opts := &github.ProjectListOptions{
		ListOptions: github.ListOptions{PerPage: listPageSize},
	}

	for {
		var (
			projects []*github.Project
			resp     *github.Response
			err      error
		)

		switch projectType {
		case ProjectTypeOrganization:
			projects, resp, err = g.rest.Organizations.ListProjects(ctx, g.repository.Owner, opts)
		case ProjectTypeUser:
			projects, resp, err = g.rest.Users.ListProjects(ctx, g.repository.Owner, opts)
		default:
			projects, resp, err = g.rest.Repositories.ListProjects(ctx, g.repository.Owner, g.repository.Name, opts)
		}
		if err != nil {
			return nil, g.handleGitHubError(err, resp, fmt.Sprintf("failed to list %s projects", projectType))
		}

		for _, project := range projects {
			if project.GetNumber() == number {
				return project, nil
			}
		}

		if resp.NextPage == 0 {
			return nil, nil
		}
		opts.Page = resp.NextPage
	}
}

// findColumn returns the project column with the given name, or nil when no
// column matches.
func (g *GitHub) findColumn(ctx context.Context, projectID int64, name string) (*github.ProjectColumn, error) {
	opts := &github.ListOptions{PerPage: listPageSize}

	for {
		columns, resp, err := g.rest.Projects.ListProjectColumns(ctx, projectID, opts)
		if err != nil {
			return nil, g.handleGitHubError(err, resp, "failed to list project columns")
		}

		for _, column := range columns {
			if column.GetName() == name {
				return column, nil
			}
		}

		if resp.NextPage == 0 {
			return nil, nil
		}
		opts.Page = resp.NextPage
	}
}

// buildIssueRequest maps a create request to the wire format, leaving empty
// fields unset so they are not serialized.
func buildIssueRequest(req CreateIssueRequest) *github.IssueRequest {
	out := &github.IssueRequest{
		Title: &req.Title,
	}

	if req.Body != "" {
		out.Body = &req.Body
	}
	if len(req.Labels) > 0 {
		out.Labels = &req.Labels
	}
	if len(req.Assignees) > 0 {
		out.Assignees = &req.Assignees
	}

	return out
}

// convertIssue maps a GitHub API issue to the forge-neutral form.
func convertIssue(gh *github.Issue) *issue.Issue {
	var assignees []string
	for _, user := range gh.Assignees {
		assignees = append(assignees, user.GetLogin())
	}

	return &issue.Issue{
		Number:    gh.GetNumber(),
		ID:        gh.GetID(),
		NodeID:    gh.GetNodeID(),
		Title:     gh.GetTitle(),
		State:     gh.GetState(),
		URL:       gh.GetHTMLURL(),
		Assignees: assignees,
	}
}

// handleGitHubError maps GitHub API failures to forge sentinels.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, msg string) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrNotFound, msg)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check the configured token", ErrUnauthorized)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
	}

	return fmt.Errorf("%s: %w", msg, err)
}

// requestContext bounds a single forge operation.
func requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, requestTimeout)
}
