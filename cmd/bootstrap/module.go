package bootstrap

import (
	"go.uber.org/fx"

	"mealpedeal/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	components.PaymentModule,
	components.NotifierModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.WorkerModule,
)
