package components

import (
	"clubtab/internal/infra/db"
	"clubtab/internal/infra/readstore"
	"clubtab/internal/infra/uow"
	"clubtab/internal/usecase/queries"
	"clubtab/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewTabReadStore,
			fx.As(new(queries.TabReadStore)),
		),
		fx.Annotate(
			readstore.NewDrinkReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewMemberReadStore,
			fx.As(new(queries.MemberReadStore)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
