package bootstrap

import (
	"log/slog"

	"bounce-booking/internal/infra/payment"
	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewPaymentGateway,
	),
)

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) commands.PaymentGateway {
	gw := payment.NewStripeGateway(cfg.Stripe)
	if !gw.Configured() {
		logger.Warn("stripe is not fully configured; checkout and webhooks will answer 503")
	}
	return gw
}
