package user_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedora-infra/spechub/internal/domain"
	"github.com/fedora-infra/spechub/internal/repository"
	"github.com/fedora-infra/spechub/internal/repository/repotest"
	"github.com/fedora-infra/spechub/internal/repository/user"
)

func TestCreateAndGet(t *testing.T) {
	db := repotest.SetupTestDB(t)
	ctx := context.Background()

	u := &domain.User{Name: "pingou"}
	require.NoError(t, user.Create(ctx, db, u))
	assert.NotZero(t, u.ID)

	got, err := user.Get(ctx, db, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "pingou", got.Name)
	assert.Nil(t, got.Email)

	got, err = user.GetByName(ctx, db, "pingou")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = user.GetByName(ctx, db, "ralph")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestCreate_DuplicateName(t *testing.T) {
	db := repotest.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, user.Create(ctx, db, &domain.User{Name: "pingou"}))
	err := user.Create(ctx, db, &domain.User{Name: "pingou"})
	require.Error(t, err)
	assert.True(t, repository.IsUniqueViolation(err))
}

func TestSetEmail(t *testing.T) {
	db := repotest.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, user.Create(ctx, db, &domain.User{Name: "pingou"}))
	require.NoError(t, user.Create(ctx, db, &domain.User{Name: "ralph"}))

	updated, err := user.SetEmail(ctx, db, "pingou", "pingou@example.org")
	require.NoError(t, err)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "pingou@example.org", *updated.Email)

	got, err := user.GetByEmail(ctx, db, "pingou@example.org")
	require.NoError(t, err)
	assert.Equal(t, "pingou", got.Name)

	_, err = user.SetEmail(ctx, db, "ralph", "pingou@example.org")
	require.Error(t, err)
	assert.True(t, repository.IsUniqueViolation(err))

	_, err = user.SetEmail(ctx, db, "nobody", "nobody@example.org")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
