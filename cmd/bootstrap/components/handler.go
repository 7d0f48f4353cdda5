package components

import (
	"bounce-booking/internal/handler"
	"bounce-booking/internal/handler/api"
	"bounce-booking/internal/handler/middleware"
	"bounce-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewPromoHandler,
		api.NewWebhookHandler,
		api.NewAdminHandler,
		handler.NewHandlers,
		func(cfg config.Config) *middleware.AdminMiddleware {
			return middleware.NewAdminMiddleware(cfg.Admin)
		},
	),
	fx.Invoke(handler.NewRouter),
)
