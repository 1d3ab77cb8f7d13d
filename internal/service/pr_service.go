package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fedora-infra/spechub/internal/config"
	"github.com/fedora-infra/spechub/internal/domain"
	"github.com/fedora-infra/spechub/internal/repository"
	"github.com/fedora-infra/spechub/internal/repository/pr"
	"github.com/fedora-infra/spechub/internal/repository/user"
)

// ListFilter narrows PRService.List. Nil fields are ignored.
type ListFilter = pr.Filter

// OpenPullRequestInput describes a pull request to open.
type OpenPullRequestInput struct {
	TargetProjectID int64   `validate:"gt=0"`
	SourceProjectID int64   `validate:"gt=0"`
	Title           string  `validate:"required,max=255"`
	StartID         *string `validate:"omitempty,max=40"`
	StopID          string  `validate:"required,max=40"`
	Author          string  `validate:"required"`
}

// PRService handles pull request business logic.
type PRService struct {
	db    *sql.DB
	scope string
	log   *zap.SugaredLogger
}

// NewPRService creates a new pull request service.
func NewPRService(db *sql.DB, cfg config.PullRequestConfig, log *zap.SugaredLogger) *PRService {
	return &PRService{
		db:    db,
		scope: cfg.DuplicateScope,
		log:   log.Named("service.pr"),
	}
}

// Open creates a pull request from the source project into the target project.
// Only one open request may cover a given revision range from a source project.
func (s *PRService) Open(ctx context.Context, in OpenPullRequestInput) (*domain.PullRequest, error) {
	if in.StartID != nil && *in.StartID == "" {
		in.StartID = nil
	}
	if err := checkStruct(in); err != nil {
		return nil, err
	}

	author, err := user.GetByName(ctx, s.db, in.Author)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	if _, err := getProject(ctx, s.db, in.TargetProjectID); err != nil {
		return nil, err
	}
	if _, err := getProject(ctx, s.db, in.SourceProjectID); err != nil {
		return nil, err
	}

	p := &domain.PullRequest{
		ProjectID:     in.TargetProjectID,
		ProjectIDFrom: in.SourceProjectID,
		Title:         in.Title,
		StartID:       in.StartID,
		StopID:        in.StopID,
		UserID:        author.ID,
	}

	if err := pr.Create(ctx, s.db, p, s.dedupeKey(p)); err != nil {
		if repository.IsUniqueViolation(err) {
			duplicateRequests.Inc()
			return nil, ErrDuplicateRequest
		}
		if repository.IsForeignKeyViolation(err) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	created, err := pr.Get(ctx, s.db, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get created pull request: %w", err)
	}

	pullRequestsOpened.Inc()
	s.log.Infow("pull request opened",
		"pr_id", created.ID,
		"display_id", created.DisplayID,
		"project_id", created.ProjectID,
		"project_id_from", created.ProjectIDFrom,
		"author", author.Name,
	)
	return created, nil
}

// dedupeKey identifies the revision range of p for duplicate detection.
// Revisions are length-prefixed so no two ranges share a key.
func (s *PRService) dedupeKey(p *domain.PullRequest) string {
	start := ""
	if p.StartID != nil {
		start = *p.StartID
	}
	rng := fmt.Sprintf("%d:%s|%d:%s", len(start), start, len(p.StopID), p.StopID)
	if s.scope == config.ScopeSourceTarget {
		return fmt.Sprintf("%d|%d|%s", p.ProjectIDFrom, p.ProjectID, rng)
	}
	return fmt.Sprintf("%d|%s", p.ProjectIDFrom, rng)
}

// DisplayID returns the 1-based position of p among the requests of its target project.
func (s *PRService) DisplayID(ctx context.Context, p *domain.PullRequest) (int64, error) {
	return pr.DisplayID(ctx, s.db, p.ProjectID, p.ID)
}

// Lookup returns the pull request shown as displayID on the target project.
func (s *PRService) Lookup(ctx context.Context, projectID, displayID int64) (*domain.PullRequest, error) {
	p, err := pr.GetByDisplayID(ctx, s.db, projectID, displayID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPRNotFound
		}
		return nil, fmt.Errorf("failed to look up pull request: %w", err)
	}
	return p, nil
}

// Get returns a pull request by storage id.
func (s *PRService) Get(ctx context.Context, id int64) (*domain.PullRequest, error) {
	p, err := pr.Get(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPRNotFound
		}
		return nil, fmt.Errorf("failed to get pull request: %w", err)
	}
	return p, nil
}

// List returns the pull requests matching f, ordered by storage id.
func (s *PRService) List(ctx context.Context, f ListFilter) ([]domain.PullRequest, error) {
	if f.Status != nil && !f.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *f.Status)
	}
	return pr.List(ctx, s.db, f)
}

// Close resolves an open pull request and returns its current state.
// Idempotent: a request that is already closed keeps its resolution and no error is returned.
func (s *PRService) Close(ctx context.Context, id int64, resolution domain.PRStatus) (*domain.PullRequest, error) {
	if !resolution.IsClosed() {
		return nil, ErrInvalidResolution
	}

	closed, err := pr.Close(ctx, s.db, id, resolution, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if closed {
		pullRequestsClosed.WithLabelValues(string(resolution)).Inc()
		s.log.Infow("pull request closed", "pr_id", id, "resolution", resolution)
	}
	return current, nil
}
