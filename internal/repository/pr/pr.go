package pr

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fedora-infra/spechub/internal/domain"
	"github.com/fedora-infra/spechub/internal/repository"
)

// display_id ranks a request among every request of its target project,
// independent of the filters applied to the outer query.
const selectColumns = `
	SELECT pr.id,
	       (SELECT COUNT(*) FROM pull_requests r
	         WHERE r.project_id = pr.project_id AND r.id <= pr.id) AS display_id,
	       pr.project_id, pr.project_id_from, pr.title, pr.start_id, pr.stop_id,
	       pr.user_id, pr.status, pr.created_at, pr.closed_at
	FROM pull_requests pr
`

// Filter narrows List results. Nil fields are ignored; set fields combine with AND.
type Filter struct {
	ProjectID     *int64
	ProjectIDFrom *int64
	Status        *domain.PRStatus
}

// Create inserts a new open pull request and fills in its id.
// dedupeKey identifies the change range; only one open request may hold a given key.
func Create(ctx context.Context, exec repository.DBTX, p *domain.PullRequest, dedupeKey string) error {
	query := `
		INSERT INTO pull_requests
			(project_id, project_id_from, title, start_id, stop_id, user_id, status, dedupe_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.Status = domain.StatusOpen
	err := exec.QueryRowContext(ctx, query,
		p.ProjectID, p.ProjectIDFrom, p.Title, p.StartID, p.StopID, p.UserID, p.Status, dedupeKey, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create pull request: %w", err)
	}
	return nil
}

// Get retrieves a pull request by its storage ID.
func Get(ctx context.Context, exec repository.DBTX, id int64) (*domain.PullRequest, error) {
	return scanOne(exec.QueryRowContext(ctx, selectColumns+` WHERE pr.id = $1`, id))
}

// GetByDisplayID retrieves the displayID-th pull request opened against projectID.
func GetByDisplayID(ctx context.Context, exec repository.DBTX, projectID, displayID int64) (*domain.PullRequest, error) {
	if displayID < 1 {
		return nil, sql.ErrNoRows
	}
	query := selectColumns + ` WHERE pr.project_id = $1 ORDER BY pr.id LIMIT 1 OFFSET $2`
	return scanOne(exec.QueryRowContext(ctx, query, projectID, displayID-1))
}

// DisplayID ranks a pull request among the requests of its target project.
func DisplayID(ctx context.Context, exec repository.DBTX, projectID, id int64) (int64, error) {
	query := `SELECT COUNT(*) FROM pull_requests WHERE project_id = $1 AND id <= $2`
	var n int64
	if err := exec.QueryRowContext(ctx, query, projectID, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to compute display id: %w", err)
	}
	return n, nil
}

// List returns the pull requests matching the filter ordered by storage ID.
func List(ctx context.Context, exec repository.DBTX, f Filter) ([]domain.PullRequest, error) {
	var (
		conds []string
		args  []any
	)
	if f.ProjectID != nil {
		args = append(args, *f.ProjectID)
		conds = append(conds, fmt.Sprintf("pr.project_id = $%d", len(args)))
	}
	if f.ProjectIDFrom != nil {
		args = append(args, *f.ProjectIDFrom)
		conds = append(conds, fmt.Sprintf("pr.project_id_from = $%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		conds = append(conds, fmt.Sprintf("pr.status = $%d", len(args)))
	}

	query := selectColumns
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY pr.id"

	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}
	defer func() { _ = rows.Close() }()

	prs := make([]domain.PullRequest, 0)
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pull request: %w", err)
		}
		prs = append(prs, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return prs, nil
}

// Close moves an open pull request to the given terminal status.
// Returns false when the request was not open (already closed or missing).
func Close(ctx context.Context, exec repository.DBTX, id int64, status domain.PRStatus, closedAt time.Time) (bool, error) {
	query := `
		UPDATE pull_requests
		SET status = $1, closed_at = $2
		WHERE id = $3 AND status = $4
	`
	result, err := exec.ExecContext(ctx, query, status, closedAt, id, domain.StatusOpen)
	if err != nil {
		return false, fmt.Errorf("failed to close pull request: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// Exists checks if a pull request exists.
func Exists(ctx context.Context, exec repository.DBTX, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM pull_requests WHERE id = $1)`
	err := exec.QueryRowContext(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pull request existence: %w", err)
	}
	return exists, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*domain.PullRequest, error) {
	var p domain.PullRequest
	var startID sql.NullString
	var closedAt sql.NullTime
	err := row.Scan(
		&p.ID,
		&p.DisplayID,
		&p.ProjectID,
		&p.ProjectIDFrom,
		&p.Title,
		&startID,
		&p.StopID,
		&p.UserID,
		&p.Status,
		&p.CreatedAt,
		&closedAt,
	)
	if err != nil {
		return nil, err
	}
	if startID.Valid {
		p.StartID = &startID.String
	}
	if closedAt.Valid {
		p.ClosedAt = &closedAt.Time
	}
	return &p, nil
}

func scanOne(row *sql.Row) (*domain.PullRequest, error) {
	p, err := scan(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get pull request: %w", err)
	}
	return p, nil
}
