package components

import (
	"venuebook/internal/domain/booking"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/config"
	"venuebook/internal/usecase"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"
	"venuebook/internal/usecase/shared"

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
	booking.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewBookingCommands,
		commands.NewCatalogUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewCatalogQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBookingCommands(
	cfg config.Config,
	uow shared.UnitOfWork,
	bookingRepo shared.BookingRepository,
	venueRepo shared.VenueRepository,
	templateRepo shared.TemplateRepository,
	packageRepo shared.PackageRepository,
	menuItemRepo shared.MenuItemRepository,
	factory *booking.Factory,
	clk clock.Clock,
) commands.BookingCommands {
	return commands.NewBookingUseCase(
		uow,
		bookingRepo,
		venueRepo,
		templateRepo,
		packageRepo,
		menuItemRepo,
		factory,
		clk,
		cfg.Booking.HoldDuration,
		cfg.Booking.SweepBatch,
	)
}
