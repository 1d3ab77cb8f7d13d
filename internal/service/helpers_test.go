package service_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/fedora-infra/spechub/internal/config"
	"github.com/fedora-infra/spechub/internal/domain"
	"github.com/fedora-infra/spechub/internal/repository/repotest"
	"github.com/fedora-infra/spechub/internal/service"
	"github.com/fedora-infra/spechub/internal/storage"
)

// fakeStorage keeps repositories as a set of paths.
type fakeStorage struct {
	mu     sync.Mutex
	paths  map[string]bool
	repos  map[string][]string
	fail   map[string]error
	late   map[string]bool
	clones map[string]string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		paths:  map[string]bool{},
		repos:  map[string][]string{},
		fail:   map[string]error{},
		late:   map[string]bool{},
		clones: map[string]string{},
	}
}

func (f *fakeStorage) Exists(path string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail["stat"]; err != nil {
		return false, err
	}
	return f.paths[path], nil
}

func (f *fakeStorage) CloneBare(_ context.Context, src, dst string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.reserve("clone", dst); err != nil {
		return err
	}
	if !f.paths[src] {
		delete(f.paths, dst)
		return fmt.Errorf("repository %s not found", src)
	}
	f.clones[dst] = src
	return nil
}

func (f *fakeStorage) InitBare(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reserve("init", path)
}

func (f *fakeStorage) RemoveAll(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail["remove"]; err != nil {
		return err
	}
	for p := range f.paths {
		if p == path || strings.HasPrefix(p, path+"/") {
			delete(f.paths, p)
		}
	}
	return nil
}

func (f *fakeStorage) ListRepositories(dir string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := append([]string(nil), f.repos[dir]...)
	sort.Strings(names)
	return names, nil
}

// reserve must be called with mu held.
func (f *fakeStorage) reserve(op, path string) error {
	if err := f.fail[op]; err != nil {
		return err
	}
	if f.paths[path] || f.late[path] {
		return fmt.Errorf("reserve %s: %w", path, storage.ErrPathExists)
	}
	f.paths[path] = true
	return nil
}

func (f *fakeStorage) add(paths ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range paths {
		f.paths[p] = true
	}
}

func (f *fakeStorage) has(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paths[path]
}

var testPaths = service.Paths{
	GitFolder:     "/srv/git",
	ForkFolder:    "/srv/forks",
	DocsFolder:    "/srv/docs",
	TicketsFolder: "/srv/tickets",
}

type env struct {
	db       *sql.DB
	storage  *fakeStorage
	identity *service.IdentityService
	forks    *service.ForkService
	prs      *service.PRService
	comments *service.CommentService
	stats    *service.StatsService
}

func newEnv(t *testing.T) *env {
	return newEnvWithScope(t, config.ScopeSource)
}

func newEnvWithScope(t *testing.T, scope string) *env {
	t.Helper()
	db := repotest.SetupTestDB(t)
	log := zaptest.NewLogger(t).Sugar()
	fs := newFakeStorage()

	identity := service.NewIdentityService(db, fs, testPaths, log)
	return &env{
		db:       db,
		storage:  fs,
		identity: identity,
		forks:    service.NewForkService(db, fs, testPaths, identity, log),
		prs:      service.NewPRService(db, config.PullRequestConfig{DuplicateScope: scope}, log),
		comments: service.NewCommentService(db, log),
		stats:    service.NewStatsService(db),
	}
}

// rootProject registers a root project whose repository exists in the git folder.
func (e *env) rootProject(t *testing.T, name string) *domain.Project {
	t.Helper()
	p, err := e.identity.GetOrCreateProject(context.Background(), name, "")
	require.NoError(t, err)
	e.storage.add(testPaths.GitFolder + "/" + name + ".git")
	return p
}

func (e *env) user(t *testing.T, name string) *domain.User {
	t.Helper()
	u, err := e.identity.GetOrCreateUser(context.Background(), name)
	require.NoError(t, err)
	return u
}

func (e *env) openPR(t *testing.T, target, source *domain.Project, author, stop string) *domain.PullRequest {
	t.Helper()
	p, err := e.prs.Open(context.Background(), service.OpenPullRequestInput{
		TargetProjectID: target.ID,
		SourceProjectID: source.ID,
		Title:           "change " + stop,
		StopID:          stop,
		Author:          author,
	})
	require.NoError(t, err)
	return p
}

func ptr[T any](v T) *T {
	return &v
}

var errBoom = errors.New("boom")
