package components

import (
	"rentledger/internal/infra/readstore"
	"rentledger/internal/infra/uow"
	"rentledger/internal/usecase/queries"

	"go.uber.org/fx"
)

// Write-side repositories are produced inside the unit of work; only the
// UoW itself and the read stores are container-managed.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewEarningsReadStore,
			fx.As(new(queries.EarningsReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)
