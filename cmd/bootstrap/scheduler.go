package bootstrap

import (
	"context"
	"log/slog"

	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/usecase/commands"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(
		StartSweeper,
	),
)

// StartSweeper runs the abandoned-checkout sweep on a fixed interval.
// Sweep runs never overlap.
func StartSweeper(lc fx.Lifecycle, cfg config.Config, sweeper commands.Sweeper, logger *slog.Logger) error {
	if cfg.Booking.SweepInterval <= 0 {
		logger.Info("abandoned checkout sweep disabled")
		return nil
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DurationJob(cfg.Booking.SweepInterval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Booking.OperationTimeout)
			defer cancel()
			n, err := sweeper.SweepAbandoned(ctx)
			if err != nil {
				logger.Error("abandoned checkout sweep failed", "error", err)
				return
			}
			if n > 0 {
				logger.Info("abandoned checkouts cancelled", "count", n)
			}
		}),
		gocron.WithName("sweep-abandoned-checkouts"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			return s.Shutdown()
		},
	})
	return nil
}
