package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"
	"time"

	"bounce-booking/internal/infra"
	"bounce-booking/internal/pkg/civil"
	"bounce-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrInvalidCursor   = errs.New("invalid cursor")
	ErrInvalidRange    = errs.New("from must not be after to")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListFirstPage(ctx context.Context, filter BookingFilter, limit int32) ([]*BookingListItem, error)
	ListKeyset(ctx context.Context, filter BookingFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type BlockedDateReadStore interface {
	List(ctx context.Context, from, to *civil.Date, assetID *string) ([]*BlockedDateView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// List pages newest first.
	List(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, nil, ErrInvalidRange
	}

	limit = ValidateLimit(limit)
	var rows []*BookingListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.ListFirstPage(ctx, filter, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.ListKeyset(ctx, filter, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

type BlockedDateQueries interface {
	List(ctx context.Context, from, to *civil.Date, assetID *string) ([]*BlockedDateView, error)
}

type blockedDateQueriesImpl struct {
	repo BlockedDateReadStore
}

func NewBlockedDateQueries(repo BlockedDateReadStore) BlockedDateQueries {
	return &blockedDateQueriesImpl{repo: repo}
}

func (q *blockedDateQueriesImpl) List(ctx context.Context, from, to *civil.Date, assetID *string) ([]*BlockedDateView, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, ErrInvalidRange
	}
	return q.repo.List(ctx, from, to, assetID)
}
