package components

import (
	"log/slog"

	"go.uber.org/fx"

	"mealpedeal/internal/notifier"
	"mealpedeal/internal/pkg/config"
	"mealpedeal/internal/usecase/commands"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
		func(n notifier.Notifier) commands.PickupNotifier { return n },
	),
)

// NewNotifier assembles the configured channels. An unknown or missing SMS
// provider falls back to logging so order confirmation never hard-fails on
// notification config.
func NewNotifier(cfg config.Config, logger *slog.Logger) notifier.Notifier {
	channels := make([]notifier.Notifier, 0, 2)

	switch cfg.Notifier.SMSProvider {
	case "msg91":
		channels = append(channels, notifier.NewMSG91Notifier(cfg.Notifier.MSG91APIKey, cfg.Notifier.MSG91SenderID))
	case "textlocal":
		channels = append(channels, notifier.NewTextLocalNotifier(cfg.Notifier.TextLocalAPIKey, cfg.Notifier.TextLocalSender))
	default:
		channels = append(channels, notifier.NewLogNotifier(logger))
	}

	if cfg.Notifier.WhatsAppEnabled && cfg.Notifier.WhatsAppEndpoint != "" {
		channels = append(channels, notifier.NewWhatsAppNotifier(cfg.Notifier.WhatsAppAPIKey, cfg.Notifier.WhatsAppEndpoint))
	}

	if len(channels) == 1 {
		return channels[0]
	}
	return notifier.NewFanout(channels...)
}
