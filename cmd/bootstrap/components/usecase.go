package components

import (
	"stayquest/internal/pkg/clock"
	"stayquest/internal/pkg/config"
	"stayquest/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewCheckoutUseCase,
		usecase.NewBookingUseCase,
		usecase.NewFavoriteUseCase,
		NewHotelUseCase,
		// The auth middleware only needs token validation; expose the
		// narrow interface backed by the auth use case.
		func(auth usecase.AuthUseCase) usecase.TokenValidator {
			return auth
		},
	),
)

func NewHotelUseCase(places usecase.PlacesClient, cfg config.Config) usecase.HotelUseCase {
	return usecase.NewHotelUseCase(places, cfg.Places.DefaultRadius)
}
