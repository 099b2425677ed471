package components

import (
	"hotel-front-desk/internal/domain/reservation"
	"hotel-front-desk/internal/pkg/clock"
	"hotel-front-desk/internal/pkg/config"
	"hotel-front-desk/internal/usecase"
	"hotel-front-desk/internal/usecase/commands"
	"hotel-front-desk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock, cfg config.Config) *reservation.Factory {
		return reservation.NewFactory(clk, cfg.Billing.AdvancePercent)
	},
	func(cfg config.Config) config.StaffConfig {
		return cfg.Staff
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewCatalogQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
