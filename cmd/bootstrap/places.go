package bootstrap

import (
	"stayquest/internal/infra/places"
	"stayquest/internal/pkg/config"
	"stayquest/internal/usecase"

	"go.uber.org/fx"
)

var PlacesModule = fx.Module("places",
	fx.Provide(
		fx.Annotate(
			NewPlacesClient,
			fx.As(new(usecase.PlacesClient)),
		),
	),
)

func NewPlacesClient(cfg config.Config) (*places.GoogleClient, error) {
	return places.NewGoogleClient(cfg.Places)
}
