package components

import (
	"go.uber.org/fx"

	"mealpedeal/internal/handler"
	"mealpedeal/internal/handler/api"
	"mealpedeal/internal/handler/middleware"
	"mealpedeal/internal/pkg/config"
	"mealpedeal/internal/usecase/commands"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOfferHandler,
		api.NewOrderHandler,
		func(webhookCommands commands.WebhookCommands, cfg config.Config) *api.WebhookHandler {
			return api.NewWebhookHandler(webhookCommands, cfg.Razorpay)
		},
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
