package repository_test

import (
	"context"
	"testing"

	"stayquest/internal/domain/booking"
	"stayquest/internal/domain/user"
	"stayquest/internal/infra"
	"stayquest/internal/infra/repository"
	"stayquest/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingEntity(t *testing.T, userID, paymentID string) *booking.Booking {
	t.Helper()
	details, err := booking.NewDetails("Grand Plaza Hotel", "2025-07-01", "2025-07-03", userID)
	require.NoError(t, err)
	entity, err := booking.NewConfirmedBooking(details, paymentID)
	require.NoError(t, err)
	return entity
}

func TestBookingRepository_DB(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.NewTestPool(t)
	dbtest.ApplyMigrations(t, ctx, pool)
	dbtest.TruncateAll(t, ctx, pool)

	repo := repository.NewBookingRepository(pool)
	userID := dbtest.InsertUser(t, ctx, pool, "booker@example.com")

	t.Run("insert and read back through payment id", func(t *testing.T) {
		entity := newBookingEntity(t, userID, "pi_db_001")

		created, err := repo.Create(ctx, entity)
		require.NoError(t, err)
		assert.Equal(t, "pi_db_001", created.PaymentID)
		assert.Equal(t, "2025-07-01", created.CheckIn)
		assert.Equal(t, "2025-07-03", created.CheckOut)
		assert.Equal(t, "confirmed", created.Status)

		found, err := repo.FindByPaymentID(ctx, "pi_db_001")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("unique constraint rejects second row for same payment", func(t *testing.T) {
		first := newBookingEntity(t, userID, "pi_db_002")
		_, err := repo.Create(ctx, first)
		require.NoError(t, err)

		second := newBookingEntity(t, userID, "pi_db_002")
		_, err = repo.Create(ctx, second)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("unknown payment id maps to not found", func(t *testing.T) {
		_, err := repo.FindByPaymentID(ctx, "pi_db_missing")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("list returns only the owner's bookings", func(t *testing.T) {
		otherID := dbtest.InsertUser(t, ctx, pool, "other@example.com")
		_, err := repo.Create(ctx, newBookingEntity(t, otherID, "pi_db_003"))
		require.NoError(t, err)

		ownerUUID := uuid.MustParse(userID)
		bookings, err := repo.FindByUserID(ctx, ownerUUID)
		require.NoError(t, err)
		for _, b := range bookings {
			assert.Equal(t, ownerUUID, b.UserID)
		}
	})

	t.Run("cancel is scoped to the owning user", func(t *testing.T) {
		created, err := repo.Create(ctx, newBookingEntity(t, userID, "pi_db_004"))
		require.NoError(t, err)

		err = repo.CancelByID(ctx, created.ID, uuid.New())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		require.NoError(t, repo.CancelByID(ctx, created.ID, uuid.MustParse(userID)))

		found, err := repo.FindByPaymentID(ctx, "pi_db_004")
		require.NoError(t, err)
		assert.Equal(t, "cancelled", found.Status)
	})
}

func TestUserRepository_DB(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.NewTestPool(t)
	dbtest.ApplyMigrations(t, ctx, pool)
	dbtest.TruncateAll(t, ctx, pool)

	repo := repository.NewUserRepository(pool)

	t.Run("duplicate email maps to duplicate key", func(t *testing.T) {
		email, err := user.NewEmail("dup@example.com")
		require.NoError(t, err)

		_, err = repo.Create(ctx, user.NewUser(email, "hash-1"))
		require.NoError(t, err)

		_, err = repo.Create(ctx, user.NewUser(email, "hash-2"))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("stored hash comes back with the read model", func(t *testing.T) {
		email, err := user.NewEmail("reader@example.com")
		require.NoError(t, err)

		created, err := repo.Create(ctx, user.NewUser(email, "stored-hash"))
		require.NoError(t, err)

		found, hash, err := repo.FindByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "stored-hash", hash)
	})
}
