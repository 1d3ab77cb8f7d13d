package comment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fedora-infra/spechub/internal/domain"
	"github.com/fedora-infra/spechub/internal/repository"
)

const selectColumns = `
	SELECT c.id, c.pull_request_id, c.commit_id, c.user_id, u.name, c.line, c.comment, c.parent_id, c.created_at
	FROM pull_request_comments c
	JOIN users u ON u.id = c.user_id
`

// Create inserts a new comment and fills in its id.
func Create(ctx context.Context, exec repository.DBTX, c *domain.Comment) error {
	query := `
		INSERT INTO pull_request_comments (pull_request_id, commit_id, user_id, line, comment, parent_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	err := exec.QueryRowContext(ctx, query,
		c.PullRequestID, c.CommitID, c.UserID, c.Line, c.Body, c.ParentID, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// Get retrieves a comment by ID.
func Get(ctx context.Context, exec repository.DBTX, id int64) (*domain.Comment, error) {
	c, err := scan(exec.QueryRowContext(ctx, selectColumns+` WHERE c.id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return c, nil
}

// ListByPullRequest returns all comments of a pull request in creation order.
func ListByPullRequest(ctx context.Context, exec repository.DBTX, prID int64) ([]domain.Comment, error) {
	rows, err := exec.QueryContext(ctx, selectColumns+` WHERE c.pull_request_id = $1 ORDER BY c.id`, prID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return comments, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*domain.Comment, error) {
	var c domain.Comment
	var line sql.NullInt64
	var parentID sql.NullInt64
	err := row.Scan(&c.ID, &c.PullRequestID, &c.CommitID, &c.UserID, &c.Author, &line, &c.Body, &parentID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if line.Valid {
		l := int(line.Int64)
		c.Line = &l
	}
	if parentID.Valid {
		c.ParentID = &parentID.Int64
	}
	return &c, nil
}
