package components

import (
	"stayquest/internal/handler"
	"stayquest/internal/handler/api"
	"stayquest/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewHotelHandler,
		api.NewCheckoutHandler,
		api.NewBookingHandler,
		api.NewFavoriteHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
