package forge

import (
	"fmt"
	"regexp"
	"strings"
)

// Repository identifies a repository on a forge.
type Repository struct {
	Owner string
	Name  string
}

// String returns the owner/name form of the repository.
func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}

// Regex patterns for extracting the repository from git remote URLs.
var (
	// HTTPS format: https://github.com/owner/repo.git
	httpsRemotePattern = regexp.MustCompile(`github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)
	// SSH format: git@github.com:owner/repo.git
	sshRemotePattern = regexp.MustCompile(`github\.com:([^/]+)/([^/]+?)(?:\.git)?$`)
)

// ParseRepository parses an owner/name repository reference.
func ParseRepository(ref string) (Repository, error) {
	parts := strings.Split(ref, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repository{}, fmt.Errorf("%w: %q (expected owner/name)", ErrInvalidRepository, ref)
	}

	return Repository{Owner: parts[0], Name: parts[1]}, nil
}

// RepositoryFromRemote extracts the repository from a git remote URL.
// Both HTTPS and SSH GitHub remote formats are supported.
func RepositoryFromRemote(remoteURL string) (Repository, error) {
	var matches []string
	switch {
	case strings.Contains(remoteURL, "github.com/"):
		matches = httpsRemotePattern.FindStringSubmatch(remoteURL)
	case strings.Contains(remoteURL, "github.com:"):
		matches = sshRemotePattern.FindStringSubmatch(remoteURL)
	}

	if len(matches) != 3 {
		return Repository{}, fmt.Errorf("%w: %q", ErrInvalidRepository, remoteURL)
	}

	return Repository{Owner: matches[1], Name: matches[2]}, nil
}
