package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"bounce-booking/internal/domain/addon"
	"bounce-booking/internal/domain/availability"
	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/promo"
	"bounce-booking/internal/infra/readstore"
	"bounce-booking/internal/infra/repository"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/civil"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Within runs fn in a READ COMMITTED transaction. Row locks taken inside fn
// serialize competing transitions; serialization failures and deadlocks retry.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	bookingRepo      shared.BookingRepository
	promoRepo        shared.PromoRepository
	blockedDateRepo  shared.BlockedDateRepository
	webhookEventRepo shared.WebhookEventRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Promos() shared.PromoRepository {
	if t.promoRepo == nil {
		t.promoRepo = repository.NewPromoRepository(t.uow.q, t.dbtx)
	}
	return t.promoRepo
}

func (t *pgTx) BlockedDates() shared.BlockedDateRepository {
	if t.blockedDateRepo == nil {
		t.blockedDateRepo = repository.NewBlockedDateRepository(t.uow.q, t.dbtx)
	}
	return t.blockedDateRepo
}

func (t *pgTx) WebhookEvents() shared.WebhookEventRepository {
	if t.webhookEventRepo == nil {
		t.webhookEventRepo = repository.NewWebhookEventRepository(t.uow.q, t.dbtx)
	}
	return t.webhookEventRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	availabilityStore *readstore.AvailabilityReadStore
	promoStore        *readstore.PromoReadStore
	addOnStore        *readstore.AddOnReadStore
	bookingStore      *readstore.BookingReadStore
}

func (r *commandReads) availability() *readstore.AvailabilityReadStore {
	if r.availabilityStore == nil {
		r.availabilityStore = readstore.NewAvailabilityReadStore(r.uow.q, r.dbtx)
	}
	return r.availabilityStore
}

func (r *commandReads) BlockedDates(ctx context.Context, assetID string, from, to civil.Date) ([]*availability.BlockedDate, error) {
	return r.availability().BlockedDates(ctx, assetID, from, to)
}

func (r *commandReads) Occupancy(ctx context.Context, assetID string, from, to civil.Date, pendingSince time.Time) ([]availability.Occupancy, error) {
	return r.availability().Occupancy(ctx, assetID, from, to, pendingSince)
}

func (r *commandReads) PromoByCode(ctx context.Context, code promo.Code) (*promo.PromoCode, error) {
	if r.promoStore == nil {
		r.promoStore = readstore.NewPromoReadStore(r.uow.q, r.dbtx)
	}
	return r.promoStore.PromoByCode(ctx, code)
}

func (r *commandReads) ActiveAddOns(ctx context.Context) ([]*addon.AddOn, error) {
	if r.addOnStore == nil {
		r.addOnStore = readstore.NewAddOnReadStore(r.uow.q, r.dbtx)
	}
	return r.addOnStore.ActiveAddOns(ctx)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore.BookingByID(ctx, id)
}
