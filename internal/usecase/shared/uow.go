package shared

import (
	"context"
	"time"

	"bounce-booking/internal/domain/addon"
	"bounce-booking/internal/domain/availability"
	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/promo"
	"bounce-booking/internal/pkg/civil"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Bookings() BookingRepository
	Promos() PromoRepository
	BlockedDates() BlockedDateRepository
	WebhookEvents() WebhookEventRepository
	Reads() CommandReads
}

type CommandReads interface {
	AvailabilityReader
	PromoReader
	AddOnReader
	BookingReader
}

type AvailabilityReader interface {
	// BlockedDates returns global and asset-scoped exclusions in [from, to].
	BlockedDates(ctx context.Context, assetID string, from, to civil.Date) ([]*availability.BlockedDate, error)
	// Occupancy returns confirmed bookings and pending bookings created at or
	// after pendingSince for the asset in [from, to].
	Occupancy(ctx context.Context, assetID string, from, to civil.Date, pendingSince time.Time) ([]availability.Occupancy, error)
}

type PromoReader interface {
	PromoByCode(ctx context.Context, code promo.Code) (*promo.PromoCode, error)
}

type AddOnReader interface {
	ActiveAddOns(ctx context.Context) ([]*addon.AddOn, error)
}

type BookingReader interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// LockByID loads the booking and holds a row lock until the transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	AttachSession(ctx context.Context, b *booking.Booking) error
	// SaveTransition persists lifecycle fields only if the stored status is
	// still from; it reports whether a row was updated.
	SaveTransition(ctx context.Context, b *booking.Booking, from booking.Status) (bool, error)
	// AbandonedPending lists pending bookings without a payment session
	// created before the cutoff.
	AbandonedPending(ctx context.Context, createdBefore time.Time, limit int) ([]*booking.Booking, error)
}

type PromoRepository interface {
	// Redeem increments uses_count only while the code is active and under
	// its cap; false means the code could not be applied.
	Redeem(ctx context.Context, id uuid.UUID) (bool, error)
}

type BlockedDateRepository interface {
	Create(ctx context.Context, b *availability.BlockedDate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type WebhookEventRepository interface {
	// Record stores the event id; false means it was already recorded.
	Record(ctx context.Context, eventID, eventType string, receivedAt time.Time) (bool, error)
}
