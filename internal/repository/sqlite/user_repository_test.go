package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathgate/internal/domain"
	"mathgate/internal/repository"
	"mathgate/internal/repository/sqlite"
)

func newTestRepo(t *testing.T) repository.UserRepository {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewUserRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func newTestUser(email, username string) *domain.User {
	return &domain.User{
		ID:             uuid.New(),
		Email:          email,
		Username:       username,
		HashedPassword: "$2a$04$fakefakefakefakefakefake",
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := newTestUser("alice@example.com", "alice")
	require.NoError(t, repo.Create(ctx, user))

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byID.ID)
	assert.Equal(t, user.Email, byID.Email)
	assert.Equal(t, user.Username, byID.Username)
	assert.True(t, byID.IsActive)
	assert.Nil(t, byID.UpdatedAt)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byUsername, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.GetByEmail(ctx, "ghost@example.com")
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.GetByUsername(ctx, "ghost")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("dup@example.com", "first")))

	err := repo.Create(ctx, newTestUser("dup@example.com", "second"))
	require.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("first@example.com", "dup")))

	err := repo.Create(ctx, newTestUser("second@example.com", "dup"))
	require.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestUserRepository_Update(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := newTestUser("update@example.com", "update")
	require.NoError(t, repo.Create(ctx, user))

	user.Deactivate()
	require.NoError(t, repo.Update(ctx, user))

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
	require.NotNil(t, stored.UpdatedAt)
}

func TestUserRepository_Update_UnknownID(t *testing.T) {
	repo := newTestRepo(t)

	user := newTestUser("missing@example.com", "missing")
	err := repo.Update(context.Background(), user)
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	// A failed update must not touch the caller's entity.
	assert.Nil(t, user.UpdatedAt)
}

func TestUserRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := newTestUser("delete@example.com", "delete")
	require.NoError(t, repo.Create(ctx, user))

	deleted, err := repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(ctx, user.ID)
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	deleted, err = repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
