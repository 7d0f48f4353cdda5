package repository

import (
	"context"

	"bounce-booking/internal/infra"
	sqlc "bounce-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PromoWriteQueries interface {
	RedeemPromoCode(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type PromoRepository struct {
	queries PromoWriteQueries
	db      sqlc.DBTX
}

func NewPromoRepository(queries *sqlc.Queries, db sqlc.DBTX) *PromoRepository {
	return &PromoRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PromoRepository) Redeem(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.queries.RedeemPromoCode(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to redeem promo code", err)
	}
	return n > 0, nil
}
