package usecase

import (
	"context"
	"log/slog"

	"stayquest/internal/domain/favorite"
	"stayquest/internal/infra"
	"stayquest/internal/pkg/errs"
	"stayquest/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type FavoriteRepository interface {
	Create(ctx context.Context, f *favorite.Favorite) (*readmodel.FavoriteRM, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*readmodel.FavoriteRM, error)
	FindByUserAndPlace(ctx context.Context, userID uuid.UUID, placeID string) (*readmodel.FavoriteRM, error)
	DeleteByUserAndPlace(ctx context.Context, userID uuid.UUID, placeID string) error
}

type AddFavoriteInput struct {
	PlaceID  string
	Name     string
	Vicinity *string
	PhotoRef *string
}

type FavoriteUseCase interface {
	List(ctx context.Context, userID uuid.UUID) ([]*readmodel.FavoriteRM, error)
	Add(ctx context.Context, userID uuid.UUID, in AddFavoriteInput) (*readmodel.FavoriteRM, error)
	Remove(ctx context.Context, userID uuid.UUID, placeID string) error
}

type favoriteUseCaseImpl struct {
	favoriteRepo FavoriteRepository
}

func NewFavoriteUseCase(favoriteRepo FavoriteRepository) FavoriteUseCase {
	return &favoriteUseCaseImpl{favoriteRepo: favoriteRepo}
}

func (f *favoriteUseCaseImpl) List(ctx context.Context, userID uuid.UUID) ([]*readmodel.FavoriteRM, error) {
	favorites, err := f.favoriteRepo.FindByUserID(ctx, userID)
	if err != nil {
		slog.Warn("failed to fetch favorites", "user_id", userID, "error", err.Error())
		return []*readmodel.FavoriteRM{}, nil
	}

	return favorites, nil
}

// Add is idempotent per (user, place): re-adding an existing favorite returns
// the existing row instead of violating the uniqueness constraint.
func (f *favoriteUseCaseImpl) Add(ctx context.Context, userID uuid.UUID, in AddFavoriteInput) (*readmodel.FavoriteRM, error) {
	entity, err := favorite.NewFavorite(userID, in.PlaceID, in.Name, in.Vicinity, in.PhotoRef)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	created, err := f.favoriteRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			existing, findErr := f.favoriteRepo.FindByUserAndPlace(ctx, userID, entity.PlaceID())
			if findErr != nil {
				return nil, errs.Mark(findErr, ErrDatabaseOperationFailed)
			}
			return existing, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return created, nil
}

// Remove uses delete-by-filter semantics: removing an absent favorite is not
// an error.
func (f *favoriteUseCaseImpl) Remove(ctx context.Context, userID uuid.UUID, placeID string) error {
	if err := f.favoriteRepo.DeleteByUserAndPlace(ctx, userID, placeID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}
