package commands

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/commands/admin.go -package=commandsmock

import (
	"context"
	"log/slog"

	"bounce-booking/internal/domain/availability"
	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/infra"
	"bounce-booking/internal/pkg/civil"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type TransitionResult struct {
	BookingID uuid.UUID
	Status    booking.Status
	Changed   bool
}

type CreateBlockedDateRequest struct {
	Date    civil.Date
	AssetID *string
	Reason  string
}

type AdminCommands interface {
	CompleteBooking(ctx context.Context, id uuid.UUID) (*TransitionResult, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (*TransitionResult, error)
	CreateBlockedDate(ctx context.Context, req CreateBlockedDateRequest) (*availability.BlockedDate, error)
	DeleteBlockedDate(ctx context.Context, id uuid.UUID) error
}

type adminUseCaseImpl struct {
	uow    shared.UnitOfWork
	holds  HoldLocker
	clock  clock.Clock
	logger *slog.Logger
}

func NewAdminUseCase(uow shared.UnitOfWork, holds HoldLocker, clk clock.Clock, logger *slog.Logger) AdminCommands {
	return &adminUseCaseImpl{uow: uow, holds: holds, clock: clk, logger: logger}
}

func (uc *adminUseCaseImpl) CompleteBooking(ctx context.Context, id uuid.UUID) (*TransitionResult, error) {
	res, _, err := uc.transition(ctx, id, func(b *booking.Booking) (bool, error) {
		return b.Complete(uc.clock.Now())
	})
	return res, err
}

func (uc *adminUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID) (*TransitionResult, error) {
	res, b, err := uc.transition(ctx, id, func(b *booking.Booking) (bool, error) {
		return b.Cancel(uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	if res.Changed {
		if rerr := uc.holds.Release(context.WithoutCancel(ctx), b.AssetID(), b.Event().Date, b.ID().String()); rerr != nil {
			uc.logger.Warn("failed to release hold", "booking_id", id.String(), "error", rerr.Error())
		}
	}
	return res, nil
}

func (uc *adminUseCaseImpl) transition(ctx context.Context, id uuid.UUID, apply func(*booking.Booking) (bool, error)) (*TransitionResult, *booking.Booking, error) {
	var (
		res     *TransitionResult
		current *booking.Booking
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().LockByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		from := b.Status()
		changed, err := apply(b)
		if err != nil {
			if errs.Is(err, booking.ErrInvalidTransition) {
				return ErrInvalidTransition
			}
			return err
		}
		if changed {
			if changed, err = tx.Bookings().SaveTransition(ctx, b, from); err != nil {
				return err
			}
		}

		current = b
		res = &TransitionResult{BookingID: b.ID(), Status: b.Status(), Changed: changed}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	uc.logger.Info("booking status updated",
		"booking_id", id.String(),
		"status", string(res.Status),
		"changed", res.Changed)
	return res, current, nil
}

func (uc *adminUseCaseImpl) CreateBlockedDate(ctx context.Context, req CreateBlockedDateRequest) (*availability.BlockedDate, error) {
	bd, err := availability.NewBlockedDate(req.Date, req.AssetID, req.Reason, uc.clock.Now())
	if err != nil {
		return nil, asValidationError(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.BlockedDates().Create(ctx, bd)
	})
	if err != nil {
		return nil, err
	}
	return bd, nil
}

func (uc *adminUseCaseImpl) DeleteBlockedDate(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.BlockedDates().Delete(ctx, id)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrBlockedDateNotFound
	}
	return err
}
