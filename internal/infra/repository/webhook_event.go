package repository

import (
	"context"
	"time"

	"bounce-booking/internal/infra"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/pgconv"
)

type WebhookEventWriteQueries interface {
	InsertWebhookEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertWebhookEventParams) (int64, error)
}

type WebhookEventRepository struct {
	queries WebhookEventWriteQueries
	db      sqlc.DBTX
}

func NewWebhookEventRepository(queries *sqlc.Queries, db sqlc.DBTX) *WebhookEventRepository {
	return &WebhookEventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *WebhookEventRepository) Record(ctx context.Context, eventID, eventType string, receivedAt time.Time) (bool, error) {
	n, err := r.queries.InsertWebhookEvent(ctx, r.db, sqlc.InsertWebhookEventParams{
		EventID:    eventID,
		EventType:  eventType,
		ReceivedAt: pgconv.TimeToPgtype(receivedAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record webhook event", err)
	}
	return n > 0, nil
}
