package bootstrap

import (
	"stayquest/internal/infra/payment"
	"stayquest/internal/pkg/config"
	"stayquest/internal/usecase"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(usecase.PaymentGateway)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) *payment.StripeGateway {
	return payment.NewStripeGateway(cfg.Stripe, cfg.Server)
}
