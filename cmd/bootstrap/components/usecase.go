package components

import (
	"clubtab/internal/infra/mailer"
	"clubtab/internal/pkg/clock"
	"clubtab/internal/pkg/config"
	"clubtab/internal/usecase/commands"
	"clubtab/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.BookingConfig { return cfg.Booking },
	fx.Annotate(
		func(cfg config.Config) *mailer.LowStockMailer { return mailer.New(cfg.Mail) },
		fx.As(new(commands.StockAlerter)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingUseCase,
		commands.NewPaymentUseCase,
		commands.NewPurchaseUseCase,
		commands.NewDrinkUseCase,
		commands.NewMemberUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTabQueries,
		queries.NewCatalogQueries,
		queries.NewMemberQueries,
		queries.NewPaymentQueries,
		queries.NewReportQueries,
	),
)
