package repository_test

import (
	"context"
	"testing"

	"stayquest/internal/domain/favorite"
	"stayquest/internal/infra"
	"stayquest/internal/infra/repository"
	"stayquest/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository_DB(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.NewTestPool(t)
	dbtest.ApplyMigrations(t, ctx, pool)
	dbtest.TruncateAll(t, ctx, pool)

	repo := repository.NewFavoriteRepository(pool)
	userID := uuid.MustParse(dbtest.InsertUser(t, ctx, pool, "fav@example.com"))

	newEntity := func(placeID string) *favorite.Favorite {
		vicinity := "Downtown"
		entity, err := favorite.NewFavorite(userID, placeID, "Grand Plaza Hotel", &vicinity, nil)
		require.NoError(t, err)
		return entity
	}

	t.Run("insert and list", func(t *testing.T) {
		created, err := repo.Create(ctx, newEntity("place-001"))
		require.NoError(t, err)
		assert.Equal(t, "place-001", created.PlaceID)
		require.NotNil(t, created.Vicinity)
		assert.Equal(t, "Downtown", *created.Vicinity)

		favorites, err := repo.FindByUserID(ctx, userID)
		require.NoError(t, err)
		assert.NotEmpty(t, favorites)
	})

	t.Run("same place twice violates the per-user uniqueness", func(t *testing.T) {
		_, err := repo.Create(ctx, newEntity("place-002"))
		require.NoError(t, err)

		_, err = repo.Create(ctx, newEntity("place-002"))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))

		existing, err := repo.FindByUserAndPlace(ctx, userID, "place-002")
		require.NoError(t, err)
		assert.Equal(t, "place-002", existing.PlaceID)
	})

	t.Run("delete is a no-op for absent rows", func(t *testing.T) {
		require.NoError(t, repo.DeleteByUserAndPlace(ctx, userID, "place-404"))
	})

	t.Run("delete removes the row", func(t *testing.T) {
		_, err := repo.Create(ctx, newEntity("place-003"))
		require.NoError(t, err)

		require.NoError(t, repo.DeleteByUserAndPlace(ctx, userID, "place-003"))

		_, err = repo.FindByUserAndPlace(ctx, userID, "place-003")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
