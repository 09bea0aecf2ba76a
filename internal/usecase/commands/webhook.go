package commands

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"mealpedeal/internal/domain/order"
	reqdto "mealpedeal/internal/handler/dto/request"
	"mealpedeal/internal/infra"
	"mealpedeal/internal/infra/db"
	"mealpedeal/internal/notifier"
	"mealpedeal/internal/pkg/errs"
	"mealpedeal/internal/usecase/shared"
)

const (
	eventPaymentCaptured = "payment.captured"
	eventPaymentFailed   = "payment.failed"
)

type WebhookCommands interface {
	HandlePaymentEvent(ctx context.Context, req reqdto.PaymentWebhookRequest) error
}

type webhookUseCaseImpl struct {
	orderRepo      OrderRepository
	offerRepo      OfferRepository
	restaurantRepo RestaurantRepository
	notifier       PickupNotifier
	db             *pgxpool.Pool
}

func NewWebhookUseCase(
	orderRepo OrderRepository,
	offerRepo OfferRepository,
	restaurantRepo RestaurantRepository,
	pickupNotifier PickupNotifier,
	db *pgxpool.Pool,
) WebhookCommands {
	return &webhookUseCaseImpl{
		orderRepo:      orderRepo,
		offerRepo:      offerRepo,
		restaurantRepo: restaurantRepo,
		notifier:       pickupNotifier,
		db:             db,
	}
}

// HandlePaymentEvent applies a gateway payment event to the matching order.
// Deliveries are at-least-once, so every branch must tolerate replays: the
// guarded status flip makes the second delivery a no-op.
func (u *webhookUseCaseImpl) HandlePaymentEvent(ctx context.Context, req reqdto.PaymentWebhookRequest) error {
	switch req.Event {
	case eventPaymentCaptured:
		return u.confirmPayment(ctx, req.Payload.Payment.Entity.OrderID)
	case eventPaymentFailed:
		return u.releasePayment(ctx, req.Payload.Payment.Entity.OrderID)
	default:
		slog.Debug("ignoring webhook event", "event", req.Event)
		return nil
	}
}

func (u *webhookUseCaseImpl) confirmPayment(ctx context.Context, paymentOrderID string) error {
	orderEntity, err := u.orderRepo.FindByPaymentOrderID(ctx, paymentOrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// The gateway can replay events for orders we never recorded.
			slog.Warn("webhook for unknown payment order", "payment_order_id", paymentOrderID)
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	transitioned, err := shared.RunInTx(ctx, u.db, func(tx db.DBTX) (bool, error) {
		_, ok, txErr := u.orderRepo.UpdateStatusIfCurrent(ctx, tx, orderEntity.ID(), order.StatusPending, order.StatusReserved)
		return ok, txErr
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if transitioned {
		u.notifyPickup(ctx, orderEntity)
	}
	return nil
}

// releasePayment cancels the order and puts the reserved quantity back. The
// restore rides in the same transaction as the guarded flip, so a replayed
// failure event can never restore twice.
func (u *webhookUseCaseImpl) releasePayment(ctx context.Context, paymentOrderID string) error {
	orderEntity, err := u.orderRepo.FindByPaymentOrderID(ctx, paymentOrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("webhook for unknown payment order", "payment_order_id", paymentOrderID)
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	_, err = shared.RunInTx(ctx, u.db, func(tx db.DBTX) (struct{}, error) {
		_, transitioned, txErr := u.orderRepo.UpdateStatusIfCurrent(ctx, tx, orderEntity.ID(), order.StatusPending, order.StatusCancelled)
		if txErr != nil {
			return struct{}{}, txErr
		}
		if !transitioned {
			return struct{}{}, nil
		}
		_, txErr = u.offerRepo.RestoreAtomic(ctx, tx, orderEntity.OfferID(), orderEntity.Quantity())
		return struct{}{}, txErr
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// notifyPickup is fire-and-forget: a delivery failure is logged and never
// rolls back the confirmed reservation.
func (u *webhookUseCaseImpl) notifyPickup(ctx context.Context, orderEntity *order.Order) {
	restaurantName := ""
	if snapshot, err := u.restaurantRepo.FindByID(ctx, orderEntity.RestaurantID()); err == nil {
		restaurantName = snapshot.Name
	}

	notification := notifier.PickupNotification{
		Phone:             orderEntity.CustomerPhone(),
		CustomerName:      orderEntity.CustomerName(),
		RestaurantName:    restaurantName,
		PickupCode:        orderEntity.PickupCode(),
		PickupWindowStart: orderEntity.PickupWindow().Start(),
		PickupWindowEnd:   orderEntity.PickupWindow().End(),
		AmountPaise:       orderEntity.AmountPaise(),
	}
	if err := u.notifier.SendPickupConfirmation(ctx, notification); err != nil {
		slog.Warn("failed to send pickup confirmation",
			"order_id", orderEntity.ID(),
			"error", err,
		)
	}
}
