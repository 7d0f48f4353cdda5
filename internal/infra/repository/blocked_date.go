package repository

import (
	"context"

	"bounce-booking/internal/domain/availability"
	"bounce-booking/internal/infra"
	"bounce-booking/internal/infra/repository/converter"
	sqlc "bounce-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BlockedDateWriteQueries interface {
	CreateBlockedDate(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBlockedDateParams) error
	DeleteBlockedDate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type BlockedDateRepository struct {
	queries BlockedDateWriteQueries
	db      sqlc.DBTX
}

func NewBlockedDateRepository(queries *sqlc.Queries, db sqlc.DBTX) *BlockedDateRepository {
	return &BlockedDateRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BlockedDateRepository) Create(ctx context.Context, b *availability.BlockedDate) error {
	if err := r.queries.CreateBlockedDate(ctx, r.db, converter.BlockedDateToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create blocked date", err)
	}
	return nil
}

func (r *BlockedDateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteBlockedDate(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete blocked date", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("blocked date not found", nil, infra.KindNotFound)
	}
	return nil
}
