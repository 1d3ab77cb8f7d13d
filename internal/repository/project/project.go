package project

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fedora-infra/spechub/internal/domain"
	"github.com/fedora-infra/spechub/internal/repository"
)

const selectColumns = `
	SELECT p.id, p.name, p.user_id, COALESCE(u.name, ''), p.parent_id, p.created_at
	FROM projects p
	LEFT JOIN users u ON u.id = p.user_id
`

// Create inserts a new project and fills in its id.
// Owner is not written; it is derived from UserID on read.
func Create(ctx context.Context, exec repository.DBTX, p *domain.Project) error {
	query := `
		INSERT INTO projects (name, user_id, parent_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	err := exec.QueryRowContext(ctx, query, p.Name, p.UserID, p.ParentID, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Get retrieves a project by ID.
func Get(ctx context.Context, exec repository.DBTX, id int64) (*domain.Project, error) {
	return scanOne(exec.QueryRowContext(ctx, selectColumns+` WHERE p.id = $1`, id))
}

// Find retrieves the project called name in the namespace of userID.
// A nil userID selects the namespace of unowned projects.
func Find(ctx context.Context, exec repository.DBTX, name string, userID *int64) (*domain.Project, error) {
	var namespace int64
	if userID != nil {
		namespace = *userID
	}
	query := selectColumns + ` WHERE p.name = $1 AND COALESCE(p.user_id, 0) = $2`
	return scanOne(exec.QueryRowContext(ctx, query, name, namespace))
}

// GetFork retrieves the fork of projectName owned by userName.
func GetFork(ctx context.Context, exec repository.DBTX, userName, projectName string) (*domain.Project, error) {
	query := selectColumns + `
		WHERE p.name = $1 AND u.name = $2 AND p.parent_id IS NOT NULL
		ORDER BY p.created_at, p.id
		LIMIT 1
	`
	return scanOne(exec.QueryRowContext(ctx, query, projectName, userName))
}

// ListForks returns the direct forks of a project, oldest first.
func ListForks(ctx context.Context, exec repository.DBTX, parentID int64) ([]domain.Project, error) {
	query := selectColumns + ` WHERE p.parent_id = $1 ORDER BY p.created_at, p.id`
	return scanAll(exec.QueryContext(ctx, query, parentID))
}

// ListAllForks returns every fork ordered by id.
func ListAllForks(ctx context.Context, exec repository.DBTX) ([]domain.Project, error) {
	query := selectColumns + ` WHERE p.parent_id IS NOT NULL ORDER BY p.id`
	return scanAll(exec.QueryContext(ctx, query))
}

// CountReferences returns how many pull requests and forks point at a project.
func CountReferences(ctx context.Context, exec repository.DBTX, id int64) (int64, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM pull_requests WHERE project_id = $1 OR project_id_from = $1) +
			(SELECT COUNT(*) FROM projects WHERE parent_id = $1)
	`
	var n int64
	if err := exec.QueryRowContext(ctx, query, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count project references: %w", err)
	}
	return n, nil
}

// Delete removes a project row.
// Returns sql.ErrNoRows if the project doesn't exist.
func Delete(ctx context.Context, exec repository.DBTX, id int64) error {
	result, err := exec.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*domain.Project, error) {
	var p domain.Project
	var userID, parentID sql.NullInt64
	if err := row.Scan(&p.ID, &p.Name, &userID, &p.Owner, &parentID, &p.CreatedAt); err != nil {
		return nil, err
	}
	if userID.Valid {
		p.UserID = &userID.Int64
	}
	if parentID.Valid {
		p.ParentID = &parentID.Int64
	}
	return &p, nil
}

func scanOne(row *sql.Row) (*domain.Project, error) {
	p, err := scan(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

func scanAll(rows *sql.Rows, err error) ([]domain.Project, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return projects, nil
}
