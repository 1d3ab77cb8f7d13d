package user

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fedora-infra/spechub/internal/domain"
	"github.com/fedora-infra/spechub/internal/repository"
)

const selectColumns = `SELECT id, name, email, created_at FROM users`

// Create inserts a new user and fills in its id.
func Create(ctx context.Context, exec repository.DBTX, u *domain.User) error {
	query := `
		INSERT INTO users (name, email, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	err := exec.QueryRowContext(ctx, query, u.Name, u.Email, u.CreatedAt).Scan(&u.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Get retrieves a user by ID.
func Get(ctx context.Context, exec repository.DBTX, id int64) (*domain.User, error) {
	return scanOne(exec.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id))
}

// GetByName retrieves a user by handle.
func GetByName(ctx context.Context, exec repository.DBTX, name string) (*domain.User, error) {
	return scanOne(exec.QueryRowContext(ctx, selectColumns+` WHERE name = $1`, name))
}

// GetByEmail retrieves a user by email address.
func GetByEmail(ctx context.Context, exec repository.DBTX, email string) (*domain.User, error) {
	return scanOne(exec.QueryRowContext(ctx, selectColumns+` WHERE email = $1`, email))
}

// SetEmail updates the email of a user and returns the updated user.
func SetEmail(ctx context.Context, exec repository.DBTX, name, email string) (*domain.User, error) {
	query := `
		UPDATE users
		SET email = $1
		WHERE name = $2
		RETURNING id, name, email, created_at
	`
	return scanOne(exec.QueryRowContext(ctx, query, email, name))
}

func scanOne(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var email sql.NullString
	err := row.Scan(&u.ID, &u.Name, &email, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if email.Valid {
		u.Email = &email.String
	}
	return &u, nil
}
