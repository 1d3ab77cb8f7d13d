package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fedora-infra/spechub/internal/domain"
	"github.com/fedora-infra/spechub/internal/repository"
	"github.com/fedora-infra/spechub/internal/repository/project"
	"github.com/fedora-infra/spechub/internal/storage"
)

// ForkService creates and removes forks together with their repositories.
type ForkService struct {
	db       *sql.DB
	storage  RepoStorage
	paths    Paths
	identity *IdentityService
	log      *zap.SugaredLogger
}

// NewForkService creates a new fork service.
func NewForkService(db *sql.DB, repos RepoStorage, paths Paths, identity *IdentityService, log *zap.SugaredLogger) *ForkService {
	return &ForkService{
		db:       db,
		storage:  repos,
		paths:    paths,
		identity: identity,
		log:      log.Named("service.fork"),
	}
}

// Fork creates a fork of the source project for userName, creating the user if needed.
//
// The project row is committed before the repositories are provisioned. If
// provisioning fails, or ctx is cancelled part way, the row and any finished
// repositories stay in place and a *StorageProvisioningError is returned.
func (s *ForkService) Fork(ctx context.Context, userName string, sourceID int64) (*domain.Project, error) {
	source, err := getProject(ctx, s.db, sourceID)
	if err != nil {
		return nil, err
	}

	u, err := s.identity.GetOrCreateUser(ctx, userName)
	if err != nil {
		return nil, err
	}

	if source.IsOwnedBy(u) {
		return nil, ErrSelfFork
	}

	fork := &domain.Project{
		Name:     source.Name,
		UserID:   &u.ID,
		Owner:    u.Name,
		ParentID: &source.ID,
	}

	// A user owns at most one project per name, forked or not.
	_, err = project.Find(ctx, s.db, source.Name, &u.ID)
	if err == nil {
		return nil, &AlreadyExistsError{Path: fork.FullName()}
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing fork: %w", err)
	}

	// The disk may hold repositories the store has forgotten; never overwrite them.
	paths := s.paths.All(fork)
	for _, path := range paths {
		exists, err := s.storage.Exists(path)
		if err != nil {
			return nil, fmt.Errorf("failed to check storage: %w", err)
		}
		if exists {
			return nil, &AlreadyExistsError{Path: path}
		}
	}

	if err := project.Create(ctx, s.db, fork); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, &AlreadyExistsError{Path: fork.FullName()}
		}
		if repository.IsForeignKeyViolation(err) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	log := s.log.With("fork", fork.FullName(), "fork_id", fork.ID, "source_id", source.ID)

	src := s.paths.Repo(source)
	if err := s.storage.CloneBare(ctx, src, paths[0]); err != nil {
		return nil, s.drift(log, "clone", paths[0], err)
	}
	for _, path := range paths[1:] {
		if err := s.storage.InitBare(ctx, path); err != nil {
			return nil, s.drift(log, "init", path, err)
		}
	}

	forksCreated.Inc()
	log.Infow("fork created")
	return fork, nil
}

// DeleteFork removes a fork's row and then its repositories. Root projects are
// rejected, as are forks still referenced by pull requests or other forks.
//
// The reference check, the row delete and the repository removal share one
// transaction, so a reference added concurrently blocks the delete before any
// repository is touched. A removal failure rolls the row back, but repositories
// removed before it are gone and a *StorageProvisioningError is returned.
func (s *ForkService) DeleteFork(ctx context.Context, id int64) error {
	fork, err := getProject(ctx, s.db, id)
	if err != nil {
		return err
	}
	if !fork.IsFork() {
		return ErrNotAFork
	}

	log := s.log.With("fork", fork.FullName(), "fork_id", fork.ID)

	err = repository.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		refs, err := project.CountReferences(ctx, tx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return ErrProjectInUse
		}

		if err := project.Delete(ctx, tx, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrProjectNotFound
			}
			if repository.IsForeignKeyViolation(err) {
				return ErrProjectInUse
			}
			return err
		}

		for _, path := range s.paths.All(fork) {
			if err := s.storage.RemoveAll(path); err != nil {
				return s.drift(log, "remove", path, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	forksDeleted.Inc()
	log.Infow("fork deleted")
	return nil
}

// GetFork returns the fork of projectName owned by userName.
func (s *ForkService) GetFork(ctx context.Context, userName, projectName string) (*domain.Project, error) {
	p, err := project.GetFork(ctx, s.db, userName, projectName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get fork: %w", err)
	}
	return p, nil
}

// ListForks returns the direct forks of a project, oldest first.
func (s *ForkService) ListForks(ctx context.Context, id int64) ([]domain.Project, error) {
	if _, err := getProject(ctx, s.db, id); err != nil {
		return nil, err
	}
	return project.ListForks(ctx, s.db, id)
}

// ListAllForks returns every fork.
func (s *ForkService) ListAllForks(ctx context.Context) ([]domain.Project, error) {
	return project.ListAllForks(ctx, s.db)
}

// drift records a storage failure that left the store and the disk out of step.
func (s *ForkService) drift(log *zap.SugaredLogger, op, path string, err error) error {
	if errors.Is(err, storage.ErrPathExists) {
		err = &AlreadyExistsError{Path: path}
	}
	storageFailures.WithLabelValues(op).Inc()
	log.Errorw("storage provisioning failed", "op", op, "path", path, "error", err)
	return &StorageProvisioningError{Op: op, Path: path, Err: err}
}
