package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bounce-booking/internal/domain/availability"
	"bounce-booking/internal/pkg/civil"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/shared"
)

var (
	ErrInvalidMonth        = errs.New("month must be between 1 and 12")
	ErrInvalidYear         = errs.New("year is out of range")
	ErrInvalidBlackoutDate = errs.New("invalid blackout date")
)

const (
	minCalendarYear = 2000
	maxCalendarYear = 2100
)

// AvailabilityPolicy holds the rules shared by the calendar view and the
// checkout re-check: business time zone, hold window and default asset.
type AvailabilityPolicy struct {
	clock          clock.Clock
	location       *time.Location
	holdWindow     time.Duration
	defaultAssetID string
	blackouts      []civil.Date
}

func NewAvailabilityPolicy(cfg config.Config, clk clock.Clock) (*AvailabilityPolicy, error) {
	blackouts := make([]civil.Date, 0, len(cfg.Booking.BlackoutDates))
	for _, raw := range cfg.Booking.BlackoutDates {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		d, err := civil.Parse(raw)
		if err != nil {
			return nil, errs.Wrapf(errs.Mark(err, ErrInvalidBlackoutDate), "parse blackout date %q", raw)
		}
		blackouts = append(blackouts, d)
	}
	return &AvailabilityPolicy{
		clock:          clk,
		location:       cfg.Booking.Location(),
		holdWindow:     cfg.Booking.HoldWindow,
		defaultAssetID: cfg.Booking.DefaultAssetID,
		blackouts:      blackouts,
	}, nil
}

func (p *AvailabilityPolicy) Now() time.Time            { return p.clock.Now() }
func (p *AvailabilityPolicy) Today() civil.Date         { return civil.Today(p.clock, p.location) }
func (p *AvailabilityPolicy) HoldWindow() time.Duration { return p.holdWindow }
func (p *AvailabilityPolicy) Location() *time.Location  { return p.location }
func (p *AvailabilityPolicy) Fallback() availability.Fallback {
	return availability.NewFallback(p.Today(), p.blackouts)
}

func (p *AvailabilityPolicy) AssetOrDefault(assetID string) string {
	if a := strings.TrimSpace(assetID); a != "" {
		return a
	}
	return p.defaultAssetID
}

// Snapshot loads blocked dates and occupying bookings for [from, to].
func (p *AvailabilityPolicy) Snapshot(ctx context.Context, r shared.AvailabilityReader, assetID string, from, to civil.Date) (availability.Snapshot, error) {
	now := p.clock.Now()

	blocked, err := r.BlockedDates(ctx, assetID, from, to)
	if err != nil {
		return availability.Snapshot{}, errs.Wrap(err, "load blocked dates")
	}
	occupied, err := r.Occupancy(ctx, assetID, from, to, now.Add(-p.holdWindow))
	if err != nil {
		return availability.Snapshot{}, errs.Wrap(err, "load occupancy")
	}

	return availability.Snapshot{
		AssetID:    assetID,
		Today:      civil.Today(p.clock, p.location),
		Now:        now,
		HoldWindow: p.holdWindow,
		Blocked:    blocked,
		Occupied:   occupied,
	}, nil
}

// Check is the authoritative single-date evaluation. It never degrades.
func (p *AvailabilityPolicy) Check(ctx context.Context, r shared.AvailabilityReader, date civil.Date, assetID string) (availability.Day, error) {
	snap, err := p.Snapshot(ctx, r, assetID, date, date)
	if err != nil {
		return availability.Day{}, err
	}
	return snap.Evaluate(date), nil
}

type AvailabilityQueries interface {
	IsDateAvailable(ctx context.Context, date civil.Date, assetID string) (*DateAvailability, error)
	MonthAvailability(ctx context.Context, year int, month time.Month, assetID string) (*MonthAvailability, error)
}

type availabilityQueriesImpl struct {
	reads  shared.AvailabilityReader
	policy *AvailabilityPolicy
	logger *slog.Logger
}

func NewAvailabilityQueries(reads shared.AvailabilityReader, policy *AvailabilityPolicy, logger *slog.Logger) AvailabilityQueries {
	return &availabilityQueriesImpl{reads: reads, policy: policy, logger: logger}
}

// IsDateAvailable serves the display path; a storage failure yields the
// fallback verdict flagged as degraded instead of an error.
func (q *availabilityQueriesImpl) IsDateAvailable(ctx context.Context, date civil.Date, assetID string) (*DateAvailability, error) {
	asset := q.policy.AssetOrDefault(assetID)

	day, err := q.policy.Check(ctx, q.reads, date, asset)
	if err != nil {
		q.logger.Warn("availability lookup failed, serving fallback",
			"asset_id", asset,
			"date", date.String(),
			"error", err.Error())
		return &DateAvailability{AssetID: asset, Day: q.policy.Fallback().Evaluate(date), Degraded: true}, nil
	}
	return &DateAvailability{AssetID: asset, Day: day}, nil
}

func (q *availabilityQueriesImpl) MonthAvailability(ctx context.Context, year int, month time.Month, assetID string) (*MonthAvailability, error) {
	if month < time.January || month > time.December {
		return nil, ErrInvalidMonth
	}
	if year < minCalendarYear || year > maxCalendarYear {
		return nil, ErrInvalidYear
	}

	asset := q.policy.AssetOrDefault(assetID)
	first := civil.New(year, month, 1)
	last := civil.New(year, month, civil.DaysIn(year, month))

	snap, err := q.policy.Snapshot(ctx, q.reads, asset, first, last)
	if err != nil {
		q.logger.Warn("month availability lookup failed, serving fallback",
			"asset_id", asset,
			"year", year,
			"month", int(month),
			"error", err.Error())
		return &MonthAvailability{
			AssetID:  asset,
			Year:     year,
			Month:    month,
			Degraded: true,
			Days:     q.policy.Fallback().Month(year, month),
		}, nil
	}

	return &MonthAvailability{
		AssetID: asset,
		Year:    year,
		Month:   month,
		Days:    snap.Month(year, month),
	}, nil
}
