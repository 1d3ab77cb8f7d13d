// Package storage provisions bare git repositories on the local filesystem.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"go.uber.org/zap"
)

// ErrPathExists is returned when a destination path is already occupied.
var ErrPathExists = errors.New("path already exists")

// PathError records the path a storage operation failed on.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// GitStorage clones and initialises bare repositories with go-git.
type GitStorage struct {
	log *zap.SugaredLogger
}

// New creates a GitStorage.
func New(log *zap.SugaredLogger) *GitStorage {
	return &GitStorage{log: log.Named("storage")}
}

// Exists reports whether anything is present at path.
func (s *GitStorage) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, &PathError{Op: "stat", Path: path, Err: err}
}

// CloneBare clones the bare repository at src into a new bare repository at dst.
// dst must not exist; it is reserved before cloning so concurrent callers cannot share it.
func (s *GitStorage) CloneBare(ctx context.Context, src, dst string) error {
	if err := reserve(dst); err != nil {
		return err
	}

	_, err := gogit.PlainCloneContext(ctx, dst, true, &gogit.CloneOptions{URL: src})
	if errors.Is(err, transport.ErrEmptyRemoteRepository) {
		err = initEmptyClone(dst, src)
		if err == nil {
			s.log.Debugw("cloned empty repository", "src", src, "dst", dst)
			return nil
		}
	}
	if err != nil {
		_ = os.RemoveAll(dst)
		return &PathError{Op: "clone", Path: dst, Err: fmt.Errorf("clone %s: %w", src, err)}
	}

	s.log.Debugw("cloned repository", "src", src, "dst", dst)
	return nil
}

// initEmptyClone turns the reserved dst into what cloning an empty src produces:
// a bare repository with src as its origin.
func initEmptyClone(dst, src string) error {
	entries, err := os.ReadDir(dst)
	if errors.Is(err, fs.ErrNotExist) {
		err = os.Mkdir(dst, 0o755)
	}
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(dst, e.Name())); err != nil {
			return err
		}
	}

	repo, err := gogit.PlainInit(dst, true)
	if err != nil {
		return err
	}
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: gogit.DefaultRemoteName,
		URLs: []string{src},
	})
	return err
}

// InitBare creates an empty bare repository at path, which must not exist.
func (s *GitStorage) InitBare(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := reserve(path); err != nil {
		return err
	}

	if _, err := gogit.PlainInit(path, true); err != nil {
		_ = os.RemoveAll(path)
		return &PathError{Op: "init", Path: path, Err: err}
	}

	s.log.Debugw("initialised repository", "path", path)
	return nil
}

// RemoveAll deletes path recursively. A missing path is not an error.
func (s *GitStorage) RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return &PathError{Op: "remove", Path: path, Err: err}
	}
	s.log.Debugw("removed repository", "path", path)
	return nil
}

// ListRepositories returns the names, without the .git suffix, of the
// repositories found directly under dir, sorted. A missing dir yields none.
func (s *GitStorage) ListRepositories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &PathError{Op: "list", Path: dir, Err: err}
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() || !strings.HasSuffix(e.Name(), ".git") {
			continue
		}
		if name := strings.TrimSuffix(e.Name(), ".git"); name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// reserve atomically claims path as an empty directory.
func reserve(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &PathError{Op: "mkdir", Path: filepath.Dir(path), Err: err}
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &PathError{Op: "reserve", Path: path, Err: ErrPathExists}
		}
		return &PathError{Op: "reserve", Path: path, Err: err}
	}
	return nil
}
