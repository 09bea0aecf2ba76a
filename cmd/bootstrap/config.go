package bootstrap

import (
	"go.uber.org/fx"

	"mealpedeal/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
