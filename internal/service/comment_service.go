package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fedora-infra/spechub/internal/domain"
	"github.com/fedora-infra/spechub/internal/repository"
	"github.com/fedora-infra/spechub/internal/repository/comment"
	"github.com/fedora-infra/spechub/internal/repository/pr"
	"github.com/fedora-infra/spechub/internal/repository/user"
)

// AddCommentInput describes a review comment. A nil Line comments on the whole commit.
type AddCommentInput struct {
	PullRequestID int64  `validate:"gt=0"`
	CommitID      string `validate:"required,max=40"`
	Line          *int   `validate:"omitempty,gte=0"`
	Body          string `validate:"required"`
	Author        string `validate:"required"`
	ParentID      *int64 `validate:"omitempty,gt=0"`
}

// CommentService handles review comments.
type CommentService struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

// NewCommentService creates a new comment service.
func NewCommentService(db *sql.DB, log *zap.SugaredLogger) *CommentService {
	return &CommentService{db: db, log: log.Named("service.comment")}
}

// AddComment attaches a comment to a pull request. The pull request status is not changed.
func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*domain.Comment, error) {
	if err := checkStruct(in); err != nil {
		return nil, err
	}

	author, err := s.resolveAuthor(ctx, in.Author)
	if err != nil {
		return nil, err
	}

	if err := s.requirePullRequest(ctx, in.PullRequestID); err != nil {
		return nil, err
	}

	if in.ParentID != nil {
		parent, err := comment.Get(ctx, s.db, *in.ParentID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrCommentNotFound
			}
			return nil, fmt.Errorf("failed to get parent comment: %w", err)
		}
		if parent.PullRequestID != in.PullRequestID {
			return nil, ErrInvalidParent
		}
	}

	c := &domain.Comment{
		PullRequestID: in.PullRequestID,
		CommitID:      in.CommitID,
		UserID:        author.ID,
		Author:        author.Name,
		Line:          in.Line,
		Body:          in.Body,
		ParentID:      in.ParentID,
	}
	if err := comment.Create(ctx, s.db, c); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, ErrInvalidParent
		}
		return nil, err
	}

	commentsAdded.Inc()
	s.log.Debugw("comment added", "comment_id", c.ID, "pr_id", c.PullRequestID, "author", author.Name)
	return c, nil
}

// ListComments returns the comments of a pull request in creation order.
func (s *CommentService) ListComments(ctx context.Context, prID int64) ([]domain.Comment, error) {
	if err := s.requirePullRequest(ctx, prID); err != nil {
		return nil, err
	}
	return comment.ListByPullRequest(ctx, s.db, prID)
}

// Threads returns the comments of a pull request arranged by reply.
func (s *CommentService) Threads(ctx context.Context, prID int64) ([]*domain.CommentNode, error) {
	comments, err := s.ListComments(ctx, prID)
	if err != nil {
		return nil, err
	}
	return domain.BuildThreads(comments), nil
}

// resolveAuthor looks the author up by handle, then by email.
func (s *CommentService) resolveAuthor(ctx context.Context, ident string) (*domain.User, error) {
	u, err := user.GetByName(ctx, s.db, ident)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	u, err = user.GetByEmail(ctx, s.db, ident)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get author by email: %w", err)
	}
	return u, nil
}

func (s *CommentService) requirePullRequest(ctx context.Context, id int64) error {
	exists, err := pr.Exists(ctx, s.db, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPRNotFound
	}
	return nil
}
