package readstore

import (
	"context"
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/money"
	"bounce-booking/internal/domain/pricing"
	"bounce-booking/internal/infra"
	"bounce-booking/internal/infra/repository/converter"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/civil"
	"bounce-booking/internal/pkg/pgconv"
	"bounce-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookingsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsFirstPageParams) ([]sqlc.ListBookingsFirstPageRow, error)
	ListBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsKeysetParams) ([]sqlc.ListBookingsKeysetRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries *sqlc.Queries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) get(ctx context.Context, id uuid.UUID) (sqlc.Bookings, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.Bookings{}, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return sqlc.Bookings{}, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return row, nil
}

// BookingByID loads the aggregate for command-side checks.
func (r *BookingReadStore) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err)
	}
	return b, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := converter.PricingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err)
	}

	return &queries.BookingView{
		ID:               row.ID,
		AssetID:          row.AssetID,
		Status:           booking.Status(row.Status),
		PaymentStatus:    booking.PaymentStatus(row.PaymentStatus),
		CustomerName:     row.CustomerName,
		CustomerEmail:    row.CustomerEmail,
		CustomerPhone:    row.CustomerPhone,
		EventDate:        pgconv.DateFromPgtype(row.EventDate),
		EventStartTime:   pgconv.StringPtrFromPgtype(row.EventStartTime),
		EventAddress:     row.EventAddress,
		EventPostalCode:  row.EventPostalCode,
		GuestsCount:      pgconv.IntPtrFromPgtype(row.GuestsCount),
		SpecialRequests:  pgconv.StringPtrFromPgtype(row.SpecialRequests),
		RentalType:       p.RentalType,
		DeliveryZone:     p.DeliveryZone,
		BasePrice:        p.BasePrice,
		DeliveryFee:      p.DeliveryFee,
		AddOns:           p.AddOns,
		AddOnsTotal:      p.AddOnsTotal,
		DiscountAmount:   p.DiscountAmount,
		PromoCode:        p.PromoCode,
		TotalAmount:      p.TotalAmount,
		DepositAmount:    p.DepositAmount,
		PaymentSessionID: pgconv.StringPtrFromPgtype(row.PaymentSessionID),
		PaymentIntentID:  pgconv.StringPtrFromPgtype(row.PaymentIntentID),
		DepositPaidAt:    pgconv.TimePtrFromPgtype(row.DepositPaidAt),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) ListFirstPage(ctx context.Context, filter queries.BookingFilter, limit int32) ([]*queries.BookingListItem, error) {
	status, assetID, from, to := filterParams(filter)
	rows, err := r.queries.ListBookingsFirstPage(ctx, r.db, sqlc.ListBookingsFirstPageParams{
		Status:   status,
		AssetID:  assetID,
		FromDate: from,
		ToDate:   to,
		Limit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, listItem(sqlc.ListBookingsKeysetRow(row)))
	}
	return items, nil
}

func (r *BookingReadStore) ListKeyset(ctx context.Context, filter queries.BookingFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	status, assetID, from, to := filterParams(filter)
	rows, err := r.queries.ListBookingsKeyset(ctx, r.db, sqlc.ListBookingsKeysetParams{
		Status:    status,
		AssetID:   assetID,
		FromDate:  from,
		ToDate:    to,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings with keyset", err)
	}

	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, listItem(row))
	}
	return items, nil
}

func filterParams(f queries.BookingFilter) (pgtype.Text, pgtype.Text, pgtype.Date, pgtype.Date) {
	var status pgtype.Text
	if f.Status != nil {
		status = pgconv.StringToPgtype(string(*f.Status))
	}
	return status, pgconv.StringPtrToPgtype(f.AssetID), pgconv.DatePtrToPgtype(f.From), pgconv.DatePtrToPgtype(f.To)
}

func listItem(row sqlc.ListBookingsKeysetRow) *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:            row.ID,
		AssetID:       row.AssetID,
		Status:        booking.Status(row.Status),
		PaymentStatus: booking.PaymentStatus(row.PaymentStatus),
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		EventDate:     pgconv.DateFromPgtype(row.EventDate),
		RentalType:    pricing.RentalType(row.RentalType),
		TotalAmount:   money.Cents(row.TotalCents),
		DepositAmount: money.Cents(row.DepositCents),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

type BlockedDateViewQueries interface {
	ListBlockedDates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlockedDatesParams) ([]sqlc.BlockedDates, error)
}

type BlockedDateReadStore struct {
	queries BlockedDateViewQueries
	db      sqlc.DBTX
}

func NewBlockedDateReadStore(queries *sqlc.Queries, db sqlc.DBTX) *BlockedDateReadStore {
	return &BlockedDateReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BlockedDateReadStore) List(ctx context.Context, from, to *civil.Date, assetID *string) ([]*queries.BlockedDateView, error) {
	rows, err := r.queries.ListBlockedDates(ctx, r.db, sqlc.ListBlockedDatesParams{
		FromDate: pgconv.DatePtrToPgtype(from),
		ToDate:   pgconv.DatePtrToPgtype(to),
		AssetID:  pgconv.StringPtrToPgtype(assetID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked dates", err)
	}

	out := make([]*queries.BlockedDateView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.BlockedDateView{
			ID:        row.ID,
			Date:      pgconv.DateFromPgtype(row.Date),
			AssetID:   pgconv.StringPtrFromPgtype(row.AssetID),
			Reason:    row.Reason,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}
