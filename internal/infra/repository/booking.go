package repository

import (
	"context"
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/infra"
	"bounce-booking/internal/infra/repository/converter"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	LockBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	AttachBookingSession(ctx context.Context, db sqlc.DBTX, arg sqlc.AttachBookingSessionParams) (int64, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	ListAbandonedPending(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAbandonedPendingParams) ([]sqlc.Bookings, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries *sqlc.Queries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	params, err := converter.BookingToCreateParams(b)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking", err)
	}
	if err := r.queries.CreateBooking(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) LockByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.LockBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err)
	}
	return b, nil
}

func (r *BookingRepository) AttachSession(ctx context.Context, b *booking.Booking) error {
	n, err := r.queries.AttachBookingSession(ctx, r.db, sqlc.AttachBookingSessionParams{
		ID:               b.ID(),
		PaymentSessionID: pgconv.StringPtrToPgtype(b.PaymentSessionID()),
		UpdatedAt:        pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to attach payment session", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found or not pending", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) SaveTransition(ctx context.Context, b *booking.Booking, from booking.Status) (bool, error) {
	n, err := r.queries.UpdateBookingStatus(ctx, r.db, converter.BookingToStatusParams(b, from))
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return n > 0, nil
}

func (r *BookingRepository) AbandonedPending(ctx context.Context, createdBefore time.Time, limit int) ([]*booking.Booking, error) {
	rows, err := r.queries.ListAbandonedPending(ctx, r.db, sqlc.ListAbandonedPendingParams{
		CreatedAt: pgconv.TimeToPgtype(createdBefore),
		// #nosec G115 -- batch sizes are small constants
		Limit: int32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list abandoned bookings", err)
	}

	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := converter.BookingFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode booking", err)
		}
		out = append(out, b)
	}
	return out, nil
}
