package components

import (
	"log/slog"

	"bounce-booking/internal/domain/money"
	"bounce-booking/internal/domain/pricing"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/internal/usecase/queries"
	"bounce-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPricingEngine,
	queries.NewAvailabilityPolicy,
	commands.CheckoutSettingsFrom,
	commands.NotifySettingsFrom,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutUseCase,
		commands.NewReconcileUseCase,
		commands.NewAdminUseCase,
		NewSweeper,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewPromoQueries,
		queries.NewBookingQueries,
		queries.NewBlockedDateQueries,
	),
)

func NewPricingEngine(cfg config.Config) (*pricing.Engine, error) {
	return pricing.NewEngine(pricing.Settings{
		Rates: map[pricing.RentalType]money.Cents{
			pricing.RentalDaily:   money.Cents(cfg.Pricing.DailyRate),
			pricing.RentalWeekend: money.Cents(cfg.Pricing.WeekendRate),
			pricing.RentalWeekly:  money.Cents(cfg.Pricing.WeeklyRate),
		},
		LocalFee:   money.Cents(cfg.Pricing.LocalFee),
		OutsideFee: money.Cents(cfg.Pricing.OutsideFee),
		LocalZips:  cfg.Pricing.LocalZips,
	})
}

func NewSweeper(uow shared.UnitOfWork, cfg config.Config, metrics commands.Recorder, clk clock.Clock, logger *slog.Logger) commands.Sweeper {
	return commands.NewSweeper(uow, cfg.Booking.HoldWindow, metrics, clk, logger)
}
