package commands

import (
	"context"
	"log/slog"
	"time"

	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/usecase/shared"
)

const sweepBatchSize = 100

// Sweeper cancels pending bookings that never received a payment session.
// Those rows can never be paid and only clutter the admin list.
type Sweeper interface {
	SweepAbandoned(ctx context.Context) (int, error)
}

type sweeperImpl struct {
	uow        shared.UnitOfWork
	holdWindow time.Duration
	metrics    Recorder
	clock      clock.Clock
	logger     *slog.Logger
}

func NewSweeper(uow shared.UnitOfWork, holdWindow time.Duration, metrics Recorder, clk clock.Clock, logger *slog.Logger) Sweeper {
	return &sweeperImpl{uow: uow, holdWindow: holdWindow, metrics: metrics, clock: clk, logger: logger}
}

func (s *sweeperImpl) SweepAbandoned(ctx context.Context) (int, error) {
	total := 0
	for {
		swept, more, err := s.sweepBatch(ctx)
		total += swept
		if err != nil {
			return total, err
		}
		if !more {
			break
		}
	}

	if total > 0 {
		s.metrics.BookingsSwept(total)
		s.logger.Info("abandoned bookings cancelled", "count", total)
	}
	return total, nil
}

func (s *sweeperImpl) sweepBatch(ctx context.Context) (int, bool, error) {
	var swept, found int
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		swept = 0
		now := s.clock.Now()
		stale, err := tx.Bookings().AbandonedPending(ctx, now.Add(-s.holdWindow), sweepBatchSize)
		if err != nil {
			return err
		}
		found = len(stale)

		for _, b := range stale {
			from := b.Status()
			if !b.Expire(now) {
				continue
			}
			saved, err := tx.Bookings().SaveTransition(ctx, b, from)
			if err != nil {
				return err
			}
			if saved {
				swept++
			}
		}
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	// A full batch where nothing changed would loop forever.
	return swept, found == sweepBatchSize && swept > 0, nil
}
