package bootstrap

import (
	"stayquest/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	PaymentModule,
	PlacesModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
