package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mealpedeal/internal/domain/offer"
	"mealpedeal/internal/domain/order"
	"mealpedeal/internal/infra/db"
	"mealpedeal/internal/infra/repository"
	"mealpedeal/internal/notifier"
	"mealpedeal/internal/payment"
)

// Write-side ports. The concrete repositories in infra/repository satisfy
// these; tests substitute generated mocks.
type OfferRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *offer.Offer) error
	FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, patch repository.OfferPatch) (*offer.Offer, error)
	ReserveAtomic(ctx context.Context, tx db.DBTX, id uuid.UUID, qty int32) (*offer.Offer, error)
	RestoreAtomic(ctx context.Context, tx db.DBTX, id uuid.UUID, qty int32) (*offer.Offer, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	FindByPaymentOrderID(ctx context.Context, paymentOrderID string) (*order.Order, error)
	UpdateStatusIfCurrent(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to order.Status) (*order.Order, bool, error)
	MarkCollected(ctx context.Context, tx db.DBTX, id uuid.UUID, collectedAt time.Time) (*order.Order, bool, error)
}

type RestaurantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*repository.RestaurantSnapshot, error)
}

type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string, notes map[string]string) (*payment.GatewayOrder, error)
}

type PickupNotifier interface {
	SendPickupConfirmation(ctx context.Context, notification notifier.PickupNotification) error
}
