package readstore

import (
	"context"

	"bounce-booking/internal/domain/addon"
	"bounce-booking/internal/domain/promo"
	"bounce-booking/internal/infra"
	"bounce-booking/internal/infra/repository/converter"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/pgconv"
)

type PromoViewQueries interface {
	GetPromoCodeByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.PromoCodes, error)
}

type PromoReadStore struct {
	queries PromoViewQueries
	db      sqlc.DBTX
}

func NewPromoReadStore(queries *sqlc.Queries, db sqlc.DBTX) *PromoReadStore {
	return &PromoReadStore{
		queries: queries,
		db:      db,
	}
}

// PromoByCode matches case-insensitively on the normalized code.
func (r *PromoReadStore) PromoByCode(ctx context.Context, code promo.Code) (*promo.PromoCode, error) {
	row, err := r.queries.GetPromoCodeByCode(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get promo code", err)
	}
	p, err := converter.PromoFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored promo code is malformed", err)
	}
	return p, nil
}

type AddOnViewQueries interface {
	ListActiveAddOns(ctx context.Context, db sqlc.DBTX) ([]sqlc.AddOns, error)
}

type AddOnReadStore struct {
	queries AddOnViewQueries
	db      sqlc.DBTX
}

func NewAddOnReadStore(queries *sqlc.Queries, db sqlc.DBTX) *AddOnReadStore {
	return &AddOnReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AddOnReadStore) ActiveAddOns(ctx context.Context) ([]*addon.AddOn, error) {
	rows, err := r.queries.ListActiveAddOns(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list add-ons", err)
	}
	out := make([]*addon.AddOn, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.AddOnFromRow(row))
	}
	return out, nil
}
