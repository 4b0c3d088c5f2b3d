package components

import (
	"venuebook/internal/infra/postgres"
	"venuebook/internal/infra/uow"
	"venuebook/internal/usecase/queries"
	"venuebook/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			postgres.NewBookingRepository,
			fx.As(new(shared.BookingRepository)),
		),
		fx.Annotate(
			postgres.NewVenueRepository,
			fx.As(new(shared.VenueRepository)),
		),
		fx.Annotate(
			postgres.NewTemplateRepository,
			fx.As(new(shared.TemplateRepository)),
		),
		fx.Annotate(
			postgres.NewPackageRepository,
			fx.As(new(shared.PackageRepository)),
		),
		fx.Annotate(
			postgres.NewMenuItemRepository,
			fx.As(new(shared.MenuItemRepository)),
		),
		// Read-side store for queries
		fx.Annotate(
			postgres.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
	),
)
