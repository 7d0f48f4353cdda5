package components

import (
	"bounce-booking/internal/infra/readstore"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/infra/uow"
	"bounce-booking/internal/usecase/queries"
	"bounce-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Read stores serve the query side directly off the pool.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Availability
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(shared.AvailabilityReader)),
		),
		// Promo
		fx.Annotate(
			readstore.NewPromoReadStore,
			fx.As(new(shared.PromoReader)),
		),
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// BlockedDate
		fx.Annotate(
			readstore.NewBlockedDateReadStore,
			fx.As(new(queries.BlockedDateReadStore)),
		),
	),
)

// Write repositories are bound per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
