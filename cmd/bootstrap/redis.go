package bootstrap

import (
	"context"
	"log/slog"

	"bounce-booking/internal/infra/hold"
	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var HoldModule = fx.Module("hold",
	fx.Provide(
		NewHoldLocker,
	),
)

// NewHoldLocker falls back to a no-op locker when REDIS_ADDRESS is empty;
// the pending booking row is then the only guard against double booking.
func NewHoldLocker(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.HoldLocker {
	if !cfg.Redis.Enabled() {
		logger.Warn("redis not configured, date hold lock disabled")
		return hold.NoopLocker{}
	}

	client := hold.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := hold.Ping(ctx, client); err != nil {
				// Checkout still works through the row-level hold.
				logger.Warn("redis ping failed", "address", cfg.Redis.Address, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return hold.NewRedisLocker(client)
}
