package forge

import (
	"context"
	"fmt"
	"strings"

	"github.com/shurcooL/githubv4"
)

//go:generate mockgen -source=graphql.go -destination=mockgraphql.gen.go -package=forge

// GraphQLClient is the subset of the GitHub GraphQL API used for pinning.
// Pinned issues are not reachable through the REST API.
type GraphQLClient interface {
	Query(ctx context.Context, q interface{}, variables map[string]interface{}) error
	Mutate(ctx context.Context, m interface{}, input githubv4.Input, variables map[string]interface{}) error
}

// pinnedIssuesQuery reads the repository's pinned issues. GitHub caps pinned
// issues at three per repository, so last: 3 retrieves all of them.
type pinnedIssuesQuery struct {
	Repository struct {
		PinnedIssues struct {
			Nodes []pinnedIssueNode
		} `graphql:"pinnedIssues(last: 3)"`
	} `graphql:"repository(owner: $owner, name: $name)"`
}

type pinnedIssueNode struct {
	Issue struct {
		ID     string
		Number int
	}
}

type pinIssueMutation struct {
	PinIssue struct {
		Issue struct {
			ID string
		}
	} `graphql:"pinIssue(input: $input)"`
}

type unpinIssueMutation struct {
	UnpinIssue struct {
		Issue struct {
			ID string
		}
	} `graphql:"unpinIssue(input: $input)"`
}

// IsPinned reports whether the issue node is currently pinned. A repository
// the API cannot resolve reads as having no pinned issues.
func (g *GitHub) IsPinned(ctx context.Context, nodeID string) (bool, error) {
	ctx, cancel := requestContext(ctx)
	defer cancel()

	ids, err := g.pinnedIssueIDs(ctx)
	if err != nil {
		return false, err
	}

	for _, id := range ids {
		if id == nodeID {
			return true, nil
		}
	}

	return false, nil
}

// Pin pins the issue node to the repository.
func (g *GitHub) Pin(ctx context.Context, nodeID string) error {
	ctx, cancel := requestContext(ctx)
	defer cancel()

	var mutation pinIssueMutation
	input := githubv4.PinIssueInput{IssueID: githubv4.ID(nodeID)}

	if err := g.gql.Mutate(ctx, &mutation, input, nil); err != nil {
		return fmt.Errorf("%w: failed to pin issue: %w", ErrGraphQL, err)
	}

	return nil
}

// Unpin unpins the issue node. Unpinning an issue that is not pinned is a
// no-op, so a manually unpinned issue does not fail the run.
func (g *GitHub) Unpin(ctx context.Context, nodeID string) error {
	pinned, err := g.IsPinned(ctx, nodeID)
	if err != nil {
		return err
	}
	if !pinned {
		return nil
	}

	ctx, cancel := requestContext(ctx)
	defer cancel()

	var mutation unpinIssueMutation
	input := githubv4.UnpinIssueInput{IssueID: githubv4.ID(nodeID)}

	if err := g.gql.Mutate(ctx, &mutation, input, nil); err != nil {
		return fmt.Errorf("%w: failed to unpin issue: %w", ErrGraphQL, err)
	}

	return nil
}

// pinnedIssueIDs returns the node ids of the repository's pinned issues.
func (g *GitHub) pinnedIssueIDs(ctx context.Context) ([]string, error) {
	var query pinnedIssuesQuery
	variables := map[string]interface{}{
		"owner": githubv4.String(g.repository.Owner),
		"name":  githubv4.String(g.repository.Name),
	}

	if err := g.gql.Query(ctx, &query, variables); err != nil {
		if isUnresolvedRepository(err) {
			g.logger.Warnf("repository %s could not be resolved while reading pinned issues", g.repository)
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to list pinned issues: %w", ErrGraphQL, err)
	}

	ids := make([]string, 0, len(query.Repository.PinnedIssues.Nodes))
	for _, node := range query.Repository.PinnedIssues.Nodes {
		ids = append(ids, node.Issue.ID)
	}

	return ids, nil
}

// isUnresolvedRepository detects the GraphQL error returned when the
// repository does not exist or the token cannot see it.
func isUnresolvedRepository(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Could not resolve to a Repository")
}
