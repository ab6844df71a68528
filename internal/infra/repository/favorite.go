package repository

import (
	"context"

	"stayquest/internal/domain/favorite"
	"stayquest/internal/infra"
	"stayquest/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteRepository struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

func (r *FavoriteRepository) Create(ctx context.Context, f *favorite.Favorite) (*readmodel.FavoriteRM, error) {
	const stmt = `
INSERT INTO favorites (id, user_id, place_id, name, vicinity, photo_ref)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, user_id, place_id, name, vicinity, photo_ref, created_at`

	row := r.pool.QueryRow(ctx, stmt,
		f.ID(),
		f.UserID(),
		f.PlaceID(),
		f.Name(),
		f.Vicinity(),
		f.PhotoRef(),
	)

	rm, err := scanFavorite(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create favorite", err)
	}

	return rm, nil
}

func (r *FavoriteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*readmodel.FavoriteRM, error) {
	const query = `
SELECT id, user_id, place_id, name, vicinity, photo_ref, created_at
FROM favorites
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find favorites by user ID", err)
	}
	defer rows.Close()

	result := make([]*readmodel.FavoriteRM, 0)
	for rows.Next() {
		rm, scanErr := scanFavorite(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan favorite row", scanErr)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate favorite rows", err)
	}

	return result, nil
}

func (r *FavoriteRepository) FindByUserAndPlace(ctx context.Context, userID uuid.UUID, placeID string) (*readmodel.FavoriteRM, error) {
	const query = `
SELECT id, user_id, place_id, name, vicinity, photo_ref, created_at
FROM favorites
WHERE user_id = $1 AND place_id = $2`

	rm, err := scanFavorite(r.pool.QueryRow(ctx, query, userID, placeID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find favorite", err)
	}

	return rm, nil
}

func (r *FavoriteRepository) DeleteByUserAndPlace(ctx context.Context, userID uuid.UUID, placeID string) error {
	const stmt = `DELETE FROM favorites WHERE user_id = $1 AND place_id = $2`

	if _, err := r.pool.Exec(ctx, stmt, userID, placeID); err != nil {
		return infra.WrapRepoErr("failed to delete favorite", err)
	}

	return nil
}

func scanFavorite(row rowScanner) (*readmodel.FavoriteRM, error) {
	var rm readmodel.FavoriteRM

	err := row.Scan(
		&rm.ID,
		&rm.UserID,
		&rm.PlaceID,
		&rm.Name,
		&rm.Vicinity,
		&rm.PhotoRef,
		&rm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &rm, nil
}
