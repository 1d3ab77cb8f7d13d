package service

import (
	"context"
	"path/filepath"

	"github.com/fedora-infra/spechub/internal/config"
	"github.com/fedora-infra/spechub/internal/domain"
)

// RepoStorage provisions the on-disk repositories backing projects.
// CloneBare and InitBare fail with an error wrapping storage.ErrPathExists
// when the destination is already occupied.
type RepoStorage interface {
	Exists(path string) (bool, error)
	CloneBare(ctx context.Context, src, dst string) error
	InitBare(ctx context.Context, path string) error
	RemoveAll(path string) error
	ListRepositories(dir string) ([]string, error)
}

// Paths maps projects to their storage locations.
type Paths struct {
	GitFolder     string
	ForkFolder    string
	DocsFolder    string
	TicketsFolder string
}

// NewPaths creates Paths from the storage configuration.
func NewPaths(cfg config.StorageConfig) Paths {
	return Paths{
		GitFolder:     cfg.GitFolder,
		ForkFolder:    cfg.ForkFolder,
		DocsFolder:    cfg.DocsFolder,
		TicketsFolder: cfg.TicketsFolder,
	}
}

// Repo returns the main repository of p: roots live in the git folder, forks in the fork folder.
func (p Paths) Repo(proj *domain.Project) string {
	if proj.IsFork() {
		return filepath.Join(p.ForkFolder, filepath.FromSlash(proj.Path()))
	}
	return filepath.Join(p.GitFolder, filepath.FromSlash(proj.Path()))
}

// Auxiliary returns the docs and tickets repositories of p, skipping unconfigured areas.
func (p Paths) Auxiliary(proj *domain.Project) []string {
	var paths []string
	for _, folder := range []string{p.DocsFolder, p.TicketsFolder} {
		if folder == "" {
			continue
		}
		paths = append(paths, filepath.Join(folder, filepath.FromSlash(proj.Path())))
	}
	return paths
}

// All returns the main repository followed by the auxiliary ones.
func (p Paths) All(proj *domain.Project) []string {
	return append([]string{p.Repo(proj)}, p.Auxiliary(proj)...)
}
