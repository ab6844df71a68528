package components

import (
	repo_impl "stayquest/internal/infra/repository"
	"stayquest/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewFavoriteRepository,
			fx.As(new(usecase.FavoriteRepository)),
		),
	),
)
