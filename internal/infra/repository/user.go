package repository

import (
	"context"

	"stayquest/internal/domain/user"
	"stayquest/internal/infra"
	"stayquest/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*readmodel.AuthorizedUserRM, error) {
	const stmt = `
INSERT INTO users (id, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id, email, created_at`

	var rm readmodel.AuthorizedUserRM
	err := r.pool.QueryRow(ctx, stmt, u.ID(), u.Email().Value(), u.PasswordHash()).
		Scan(&rm.ID, &rm.Email, &rm.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}

	return &rm, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error) {
	const query = `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`

	var rm readmodel.AuthorizedUserRM
	var passwordHash string
	err := r.pool.QueryRow(ctx, query, email.Value()).
		Scan(&rm.ID, &rm.Email, &passwordHash, &rm.CreatedAt)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &rm, passwordHash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	const query = `SELECT id, email, created_at FROM users WHERE id = $1`

	var rm readmodel.AuthorizedUserRM
	err := r.pool.QueryRow(ctx, query, id).Scan(&rm.ID, &rm.Email, &rm.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &rm, nil
}
