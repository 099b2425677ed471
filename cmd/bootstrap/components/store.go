package components

import (
	"hotel-front-desk/internal/infra/memstore"
	"hotel-front-desk/internal/usecase/commands"
	"hotel-front-desk/internal/usecase/queries"

	"go.uber.org/fx"
)

// Everything lives in process memory: the record store owns reservation
// identities and codes, and the catalog is fixed at startup.
var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			memstore.NewReservationStore,
			fx.As(new(commands.ReservationStore)),
			fx.As(new(queries.ReservationReader)),
		),
		fx.Annotate(
			memstore.NewCatalogStore,
			fx.As(new(commands.CatalogStore)),
			fx.As(new(queries.CatalogReader)),
		),
		fx.Annotate(
			memstore.NewCustomerStore,
			fx.As(new(commands.CustomerStore)),
		),
	),
)
