//go:build unit

package git

import (
	"testing"

	gogit "github.com/go-git/go-git/v5"
	gogitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepository(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	_, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	return dir
}

func TestRemoteURL(t *testing.T) {
	dir := initRepository(t)

	repo, err := gogit.PlainOpen(dir)
	require.NoError(t, err)
	_, err = repo.CreateRemote(&gogitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"https://github.com/lerenn/example.git"},
	})
	require.NoError(t, err)

	url, err := NewGit().RemoteURL(dir, "origin")

	assert.NoError(t, err)
	assert.Equal(t, "https://github.com/lerenn/example.git", url)
}

func TestRemoteURL_RemoteNotFound(t *testing.T) {
	dir := initRepository(t)

	_, err := NewGit().RemoteURL(dir, "origin")

	assert.ErrorIs(t, err, ErrRemoteNotFound)
}

func TestRemoteURL_NotARepository(t *testing.T) {
	_, err := NewGit().RemoteURL(t.TempDir(), "origin")

	assert.ErrorIs(t, err, ErrNotARepository)
}
