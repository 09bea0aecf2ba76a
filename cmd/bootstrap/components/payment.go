package components

import (
	"go.uber.org/fx"

	"mealpedeal/internal/payment"
	"mealpedeal/internal/pkg/config"
	"mealpedeal/internal/usecase/commands"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		func(cfg config.Config) *payment.Client {
			return payment.NewClient(cfg.Razorpay)
		},
		func(client *payment.Client) commands.PaymentGateway { return client },
	),
)
