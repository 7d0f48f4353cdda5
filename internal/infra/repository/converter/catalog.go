package converter

import (
	"bounce-booking/internal/domain/addon"
	"bounce-booking/internal/domain/availability"
	"bounce-booking/internal/domain/money"
	"bounce-booking/internal/domain/promo"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/pgconv"
)

func PromoFromRow(row sqlc.PromoCodes) (*promo.PromoCode, error) {
	percent, err := pgconv.Float64PtrFromPgtype(row.PercentOff)
	if err != nil {
		return nil, err
	}
	discount, err := promo.NewDiscount(pgconv.Int64PtrFromPgtype(row.AmountOffCents), percent)
	if err != nil {
		return nil, err
	}

	return promo.ReconstructPromoCode(
		row.ID,
		promo.Code(row.Code),
		discount,
		pgconv.StringPtrFromPgtype(row.Description),
		money.Cents(row.MinOrderCents),
		pgconv.IntPtrFromPgtype(row.MaxUses),
		int(row.UsesCount),
		pgconv.TimePtrFromPgtype(row.ValidFrom),
		pgconv.TimePtrFromPgtype(row.ValidUntil),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func AddOnFromRow(row sqlc.AddOns) *addon.AddOn {
	return addon.ReconstructAddOn(
		row.ID,
		row.Name,
		row.Category,
		money.Cents(row.PricePerUnitCents),
		int(row.MaxQuantity),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func BlockedDateToCreateParams(b *availability.BlockedDate) sqlc.CreateBlockedDateParams {
	return sqlc.CreateBlockedDateParams{
		ID:        b.ID(),
		Date:      pgconv.DateToPgtype(b.Date()),
		AssetID:   pgconv.StringPtrToPgtype(b.AssetID()),
		Reason:    b.Reason(),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BlockedDateFromRow(row sqlc.BlockedDates) *availability.BlockedDate {
	return availability.ReconstructBlockedDate(
		row.ID,
		pgconv.DateFromPgtype(row.Date),
		pgconv.StringPtrFromPgtype(row.AssetID),
		row.Reason,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
