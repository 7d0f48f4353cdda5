package readstore

import (
	"context"
	"time"

	"bounce-booking/internal/domain/availability"
	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/infra"
	"bounce-booking/internal/infra/repository/converter"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/civil"
	"bounce-booking/internal/pkg/pgconv"
)

type AvailabilityViewQueries interface {
	ListBlockedDatesForAsset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlockedDatesForAssetParams) ([]sqlc.BlockedDates, error)
	ListOccupancy(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOccupancyParams) ([]sqlc.ListOccupancyRow, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityViewQueries
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(queries *sqlc.Queries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AvailabilityReadStore) BlockedDates(ctx context.Context, assetID string, from, to civil.Date) ([]*availability.BlockedDate, error) {
	rows, err := r.queries.ListBlockedDatesForAsset(ctx, r.db, sqlc.ListBlockedDatesForAssetParams{
		FromDate: pgconv.DateToPgtype(from),
		ToDate:   pgconv.DateToPgtype(to),
		AssetID:  pgconv.StringToPgtype(assetID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked dates", err)
	}

	out := make([]*availability.BlockedDate, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.BlockedDateFromRow(row))
	}
	return out, nil
}

func (r *AvailabilityReadStore) Occupancy(ctx context.Context, assetID string, from, to civil.Date, pendingSince time.Time) ([]availability.Occupancy, error) {
	rows, err := r.queries.ListOccupancy(ctx, r.db, sqlc.ListOccupancyParams{
		AssetID:      assetID,
		FromDate:     pgconv.DateToPgtype(from),
		ToDate:       pgconv.DateToPgtype(to),
		PendingSince: pgconv.TimeToPgtype(pendingSince),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupancy", err)
	}

	out := make([]availability.Occupancy, 0, len(rows))
	for _, row := range rows {
		out = append(out, availability.Occupancy{
			Date:      pgconv.DateFromPgtype(row.EventDate),
			AssetID:   row.AssetID,
			Confirmed: row.Status == string(booking.StatusConfirmed),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}
