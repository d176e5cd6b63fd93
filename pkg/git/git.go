// Package git provides Git repository introspection for issue-manager.
package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

//go:generate mockgen -source=git.go -destination=mockgit.gen.go -package=git

// Git interface provides the Git operations the tool performs.
type Git interface {
	// RemoteURL returns the URL of the named remote of the repository at repoPath.
	RemoteURL(repoPath, remoteName string) (string, error)
}

type realGit struct{}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}

// RemoteURL returns the URL of the named remote of the repository at repoPath.
// The repository is detected from repoPath or any of its parents.
func (g *realGit) RemoteURL(repoPath, remoteName string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(repoPath, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotARepository, repoPath)
	}

	remote, err := repo.Remote(remoteName)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrRemoteNotFound, remoteName)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: %s has no URL", ErrRemoteNotFound, remoteName)
	}

	return urls[0], nil
}
