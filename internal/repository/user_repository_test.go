// internal/repository/user_repository_test.go
package repository

import (
	"context"
	"testing"

	"github.com/RaczoOBY/bible-app/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormUserRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormUserRepository()

	user := &model.User{UserID: uuid.New(), Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, repo.Create(ctx, db, user))

	t.Run("existing user", func(t *testing.T) {
		found, err := repo.FindByID(ctx, db, user.UserID)
		require.NoError(t, err)
		assert.Equal(t, user.UserID, found.UserID)
		assert.Equal(t, "Ana", found.Name)
	})

	t.Run("unknown user maps to ErrNotFound", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestGormUserRepository_UpdateAggregate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormUserRepository()

	t.Run("persists the aggregate and bumps the version", func(t *testing.T) {
		user := &model.User{UserID: uuid.New(), Name: "Ana", Email: "ana2@example.com"}
		require.NoError(t, repo.Create(ctx, db, user))

		user.XP = 120
		user.Level = 2
		user.CurrentStreak = 3
		user.BestStreak = 5
		require.NoError(t, repo.UpdateAggregate(ctx, db, user))
		assert.EqualValues(t, 1, user.Version)

		stored, err := repo.FindByID(ctx, db, user.UserID)
		require.NoError(t, err)
		assert.Equal(t, 120, stored.XP)
		assert.Equal(t, 2, stored.Level)
		assert.Equal(t, 3, stored.CurrentStreak)
		assert.Equal(t, 5, stored.BestStreak)
		assert.EqualValues(t, 1, stored.Version)
	})

	t.Run("stale version returns ErrConflict", func(t *testing.T) {
		user := &model.User{UserID: uuid.New(), Name: "Bia", Email: "bia@example.com"}
		require.NoError(t, repo.Create(ctx, db, user))

		// Another transaction got there first.
		concurrent, err := repo.FindByID(ctx, db, user.UserID)
		require.NoError(t, err)
		concurrent.XP = 10
		require.NoError(t, repo.UpdateAggregate(ctx, db, concurrent))

		user.XP = 999
		err = repo.UpdateAggregate(ctx, db, user)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)

		stored, err := repo.FindByID(ctx, db, user.UserID)
		require.NoError(t, err)
		assert.Equal(t, 10, stored.XP, "the losing write must not land")
	})
}
