package cli

import (
	"fmt"
	"os"

	"github.com/lerenn/issue-manager/pkg/config"
	"github.com/lerenn/issue-manager/pkg/forge"
	"github.com/lerenn/issue-manager/pkg/git"
)

// ResolveRepository resolves the repository a run targets, in order of
// precedence: the flag override, the configured repository, the
// GITHUB_REPOSITORY environment variable, then the origin remote of the
// working directory.
func ResolveRepository(override string, cfg config.Config, gitClient git.Git) (forge.Repository, error) {
	if override != "" {
		return forge.ParseRepository(override)
	}

	if cfg.Repository != "" {
		return forge.ParseRepository(cfg.Repository)
	}

	if env := os.Getenv("GITHUB_REPOSITORY"); env != "" {
		return forge.ParseRepository(env)
	}

	remoteURL, err := gitClient.RemoteURL(".", "origin")
	if err != nil {
		return forge.Repository{}, fmt.Errorf("%w: %w", ErrNoRepository, err)
	}

	return forge.RepositoryFromRemote(remoteURL)
}
