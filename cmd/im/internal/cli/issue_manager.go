package cli

import (
	"github.com/lerenn/issue-manager/pkg/dependencies"
	"github.com/lerenn/issue-manager/pkg/forge"
	issuemanager "github.com/lerenn/issue-manager/pkg/issue-manager"
	"github.com/lerenn/issue-manager/pkg/logger"
)

// NewIssueManagerParams configures the wiring of an IssueManager for one
// invocation.
type NewIssueManagerParams struct {
	// RepositoryOverride takes precedence over the configured repository
	// and remote detection.
	RepositoryOverride string

	// Token authenticates forge calls, taking precedence over configured
	// credentials.
	Token string

	// Logger overrides the verbosity-derived logger.
	Logger logger.Logger
}

// NewIssueManager creates an IssueManager wired from the configuration, the
// environment and the global flags.
func NewIssueManager(params NewIssueManagerParams) (issuemanager.IssueManager, error) {
	configManager := NewConfigManager()
	cfg, err := configManager.GetConfigWithFallback()
	if err != nil {
		return nil, err
	}

	log := params.Logger
	if log == nil {
		log = NewLogger()
	}

	deps := dependencies.New().
		WithConfig(configManager).
		WithLogger(log)

	repository, err := ResolveRepository(params.RepositoryOverride, cfg, deps.Git)
	if err != nil {
		return nil, err
	}

	tokenSource, err := NewTokenSource(cfg, params.Token, deps.FS, log)
	if err != nil {
		return nil, err
	}

	forgeManager, err := forge.NewManager(forge.NewManagerParams{
		Repository:  repository,
		Logger:      log,
		TokenSource: tokenSource,
		APIBaseURL:  cfg.APIBaseURL,
		GraphQLURL:  cfg.GraphQLURL,
	})
	if err != nil {
		return nil, err
	}

	forgeClient, err := forgeManager.GetForge(cfg.ResolvedForge())
	if err != nil {
		return nil, err
	}

	return issuemanager.NewIssueManager(issuemanager.NewIssueManagerParams{
		Dependencies: deps.WithForge(forgeClient),
	})
}
