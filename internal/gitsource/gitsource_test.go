package gitsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsGitURL(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"https://github.com/user/decks", true},
		{"git@github.com:user/decks.git", true},
		{"/srv/decks.git", true},
		{"./decks", false},
		{"/home/me/flashcards", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsGitURL(tt.source), tt.source)
	}
}

// newOrigin creates a repository with a single committed CSV file.
func newOrigin(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "colors.csv"), []byte("rojo,red\n"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("colors.csv")
	require.NoError(t, err)
	_, err = wt.Commit("add colors", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir
}

func TestSyncClonesThenPulls(t *testing.T) {
	ctx := context.Background()
	origin := newOrigin(t)
	local := filepath.Join(t.TempDir(), "clone")

	require.NoError(t, Sync(ctx, origin, local, nil))
	data, err := os.ReadFile(filepath.Join(local, "colors.csv"))
	require.NoError(t, err)
	assert.Equal(t, "rojo,red\n", string(data))

	// Second run finds the clone and pulls; nothing new is not an error.
	require.NoError(t, Sync(ctx, origin, local, nil))
}

func TestSyncBadRemote(t *testing.T) {
	local := filepath.Join(t.TempDir(), "clone")
	err := Sync(context.Background(), filepath.Join(t.TempDir(), "missing"), local, nil)
	assert.Error(t, err)
}
