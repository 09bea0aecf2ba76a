package components

import (
	"go.uber.org/fx"

	"mealpedeal/internal/pkg/clock"
	"mealpedeal/internal/usecase/commands"
	"mealpedeal/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOfferQueries,
		queries.NewOrderQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOfferUseCase,
		commands.NewOrderUseCase,
		commands.NewWebhookUseCase,
	),
)
