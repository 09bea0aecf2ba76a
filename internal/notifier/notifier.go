package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// PickupNotification carries everything a provider needs to tell the
// customer how to collect their bag.
type PickupNotification struct {
	Phone             string
	CustomerName      string
	RestaurantName    string
	PickupCode        string
	PickupWindowStart time.Time
	PickupWindowEnd   time.Time
	AmountPaise       int32
}

// Notifier is a fire-and-forget collaborator: delivery failures are logged
// by callers and never roll back a reservation state change.
type Notifier interface {
	SendPickupConfirmation(ctx context.Context, notification PickupNotification) error
}

func (n PickupNotification) Message() string {
	return fmt.Sprintf(
		"Hi %s! Your MealPeDeal order at %s is confirmed. Pickup code: %s. Collect between %s and %s. Amount: ₹%.2f",
		n.CustomerName,
		n.RestaurantName,
		n.PickupCode,
		n.PickupWindowStart.Format("3:04 PM"),
		n.PickupWindowEnd.Format("3:04 PM"),
		float64(n.AmountPaise)/100,
	)
}

// LogNotifier is the default provider when no SMS gateway is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendPickupConfirmation(_ context.Context, notification PickupNotification) error {
	n.logger.Info("pickup confirmation (log provider)",
		"phone", notification.Phone,
		"pickup_code", notification.PickupCode,
		"restaurant", notification.RestaurantName,
	)
	return nil
}

// Fanout delivers through every configured channel; the first error is
// returned after all sends were attempted.
type Fanout struct {
	notifiers []Notifier
}

func NewFanout(notifiers ...Notifier) *Fanout {
	return &Fanout{notifiers: notifiers}
}

func (f *Fanout) SendPickupConfirmation(ctx context.Context, notification PickupNotification) error {
	var firstErr error
	for _, n := range f.notifiers {
		if err := n.SendPickupConfirmation(ctx, notification); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
