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
	"github.com/fedora-infra/spechub/internal/repository/user"
)

// IdentityService manages users and projects.
type IdentityService struct {
	db      *sql.DB
	storage RepoStorage
	paths   Paths
	log     *zap.SugaredLogger
}

// NewIdentityService creates a new identity service.
func NewIdentityService(db *sql.DB, repos RepoStorage, paths Paths, log *zap.SugaredLogger) *IdentityService {
	return &IdentityService{
		db:      db,
		storage: repos,
		paths:   paths,
		log:     log.Named("service.identity"),
	}
}

// GetOrCreateUser returns the user with the given handle, creating it on first reference.
// Concurrent callers converge on the single row allowed by the unique handle.
func (s *IdentityService) GetOrCreateUser(ctx context.Context, name string) (*domain.User, error) {
	if err := checkName("user", name); err != nil {
		return nil, err
	}

	u, err := user.GetByName(ctx, s.db, name)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	u = &domain.User{Name: name}
	if err := user.Create(ctx, s.db, u); err != nil {
		if !repository.IsUniqueViolation(err) {
			return nil, err
		}
		// Lost the race to a concurrent insert; the committed row wins.
		existing, err := user.GetByName(ctx, s.db, name)
		if err != nil {
			return nil, fmt.Errorf("failed to get user after conflict: %w", err)
		}
		return existing, nil
	}

	s.log.Infow("user created", "user", u.Name, "user_id", u.ID)
	return u, nil
}

// SetUserEmail records the email used as the fallback identity of a user.
func (s *IdentityService) SetUserEmail(ctx context.Context, name, email string) (*domain.User, error) {
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid email", ErrInvalidInput, email)
	}

	u, err := user.SetEmail(ctx, s.db, name, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to set email: %w", err)
	}
	return u, nil
}

// GetOrCreateProject returns the project called name in the namespace of owner,
// creating it if needed. An empty owner selects the root namespace.
func (s *IdentityService) GetOrCreateProject(ctx context.Context, name, owner string) (*domain.Project, error) {
	if err := checkName("project", name); err != nil {
		return nil, err
	}

	var userID *int64
	if owner != "" {
		u, err := s.GetOrCreateUser(ctx, owner)
		if err != nil {
			return nil, err
		}
		userID = &u.ID
	}

	p, err := project.Find(ctx, s.db, name, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	p = &domain.Project{Name: name, UserID: userID}
	if err := project.Create(ctx, s.db, p); err != nil {
		if !repository.IsUniqueViolation(err) {
			return nil, err
		}
		existing, err := project.Find(ctx, s.db, name, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to find project after conflict: %w", err)
		}
		return existing, nil
	}

	// Re-read to pick up the owner name.
	created, err := project.Get(ctx, s.db, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get created project: %w", err)
	}
	s.log.Infow("project created", "project", created.FullName(), "project_id", created.ID)
	return created, nil
}

// FindProject returns the project called name in the namespace of owner.
func (s *IdentityService) FindProject(ctx context.Context, name, owner string) (*domain.Project, error) {
	var userID *int64
	if owner != "" {
		u, err := user.GetByName(ctx, s.db, owner)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrProjectNotFound
			}
			return nil, fmt.Errorf("failed to get owner: %w", err)
		}
		userID = &u.ID
	}

	p, err := project.Find(ctx, s.db, name, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return p, nil
}

// GetProject returns a project by storage id.
func (s *IdentityService) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	return getProject(ctx, s.db, id)
}

// RegisterRoots creates a root project for every repository in the git folder
// and returns how many were new. Projects that already exist are skipped.
func (s *IdentityService) RegisterRoots(ctx context.Context) (int, error) {
	names, err := s.storage.ListRepositories(s.paths.GitFolder)
	if err != nil {
		return 0, fmt.Errorf("failed to list repositories: %w", err)
	}

	created := 0
	for _, name := range names {
		if err := checkName("project", name); err != nil {
			s.log.Warnw("skipping repository", "name", name, "error", err)
			continue
		}
		err := project.Create(ctx, s.db, &domain.Project{Name: name})
		if err != nil {
			// Registration is idempotent: an existing root is the expected outcome on restart.
			if repository.IsUniqueViolation(err) {
				continue
			}
			return created, err
		}
		created++
	}

	s.log.Infow("root projects registered", "found", len(names), "created", created)
	return created, nil
}

func getProject(ctx context.Context, exec repository.DBTX, id int64) (*domain.Project, error) {
	p, err := project.Get(ctx, exec, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}
