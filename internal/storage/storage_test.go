package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// seedRepository creates a repository with a single commit and returns its path and head.
func seedRepository(t *testing.T) (string, plumbing.Hash) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "seed")

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("hello\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README")
	require.NoError(t, err)

	hash, err := wt.Commit("initial commit", &gogit.CommitOptions{
		Author: &object.Signature{Name: "pingou", Email: "pingou@example.org", When: time.Now()},
	})
	require.NoError(t, err)

	return dir, hash
}

func TestGitStorage_CloneBare(t *testing.T) {
	s := New(zaptest.NewLogger(t).Sugar())
	src, head := seedRepository(t)
	dst := filepath.Join(t.TempDir(), "forks", "pingou", "guake.git")

	require.NoError(t, s.CloneBare(context.Background(), src, dst))

	repo, err := gogit.PlainOpen(dst)
	require.NoError(t, err)
	cfg, err := repo.Config()
	require.NoError(t, err)
	assert.True(t, cfg.Core.IsBare)

	_, err = repo.CommitObject(head)
	assert.NoError(t, err)

	t.Run("destination taken", func(t *testing.T) {
		err := s.CloneBare(context.Background(), src, dst)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPathExists)

		var pathErr *PathError
		require.ErrorAs(t, err, &pathErr)
		assert.Equal(t, dst, pathErr.Path)
	})
}

func TestGitStorage_CloneBare_MissingSource(t *testing.T) {
	s := New(zaptest.NewLogger(t).Sugar())
	dst := filepath.Join(t.TempDir(), "guake.git")

	err := s.CloneBare(context.Background(), filepath.Join(t.TempDir(), "nope.git"), dst)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPathExists)

	exists, err := s.Exists(dst)
	require.NoError(t, err)
	assert.False(t, exists, "failed clone must release its reservation")
}

func TestGitStorage_CloneBare_EmptySource(t *testing.T) {
	s := New(zaptest.NewLogger(t).Sugar())
	src := filepath.Join(t.TempDir(), "repos", "empty.git")
	_, err := gogit.PlainInit(src, true)
	require.NoError(t, err)
	dst := filepath.Join(t.TempDir(), "forks", "bob", "empty.git")

	require.NoError(t, s.CloneBare(context.Background(), src, dst))

	repo, err := gogit.PlainOpen(dst)
	require.NoError(t, err)
	cfg, err := repo.Config()
	require.NoError(t, err)
	assert.True(t, cfg.Core.IsBare)

	origin, err := repo.Remote(gogit.DefaultRemoteName)
	require.NoError(t, err)
	assert.Equal(t, []string{src}, origin.Config().URLs)

	_, err = repo.Head()
	assert.ErrorIs(t, err, plumbing.ErrReferenceNotFound)

	assert.ErrorIs(t, s.CloneBare(context.Background(), src, dst), ErrPathExists)
}

func TestGitStorage_InitBare(t *testing.T) {
	s := New(zaptest.NewLogger(t).Sugar())
	path := filepath.Join(t.TempDir(), "docs", "pingou", "guake.git")

	require.NoError(t, s.InitBare(context.Background(), path))

	repo, err := gogit.PlainOpen(path)
	require.NoError(t, err)
	cfg, err := repo.Config()
	require.NoError(t, err)
	assert.True(t, cfg.Core.IsBare)

	assert.ErrorIs(t, s.InitBare(context.Background(), path), ErrPathExists)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.InitBare(ctx, filepath.Join(t.TempDir(), "x.git")), context.Canceled)
}

func TestGitStorage_ExistsAndRemoveAll(t *testing.T) {
	s := New(zaptest.NewLogger(t).Sugar())
	path := filepath.Join(t.TempDir(), "guake.git")

	exists, err := s.Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.InitBare(context.Background(), path))
	exists, err = s.Exists(path)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.RemoveAll(path))
	exists, err = s.Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, s.RemoveAll(path), "removing an absent path is a no-op")
}

func TestGitStorage_ListRepositories(t *testing.T) {
	s := New(zaptest.NewLogger(t).Sugar())
	root := t.TempDir()

	for _, name := range []string{"guake.git", "fedocal.git", "notes", ".git"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.git"), nil, 0o644))

	names, err := s.ListRepositories(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"fedocal", "guake"}, names)

	names, err = s.ListRepositories(filepath.Join(root, "missing"))
	require.NoError(t, err)
	assert.Empty(t, names)
}
