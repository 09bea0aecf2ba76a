package order

import (
	"errors"
	"time"

	"mealpedeal/internal/domain/offer"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrderQuantity = errors.New("order quantity must be at least 1")
	ErrAlreadyCollected     = errors.New("order already collected")
	ErrPickupCodeMismatch   = errors.New("pickup code does not match")
	ErrNotCollectable       = errors.New("order is not in a collectable status")
)

// Order is the pickup-flow subset of the marketplace order. The pickup
// window is a snapshot taken from the offer at placement time, so later
// offer edits never move an existing reservation's window.
type Order struct {
	id             uuid.UUID
	offerID        uuid.UUID
	restaurantID   uuid.UUID
	customerID     uuid.UUID
	customerName   string
	customerPhone  string
	quantity       int32
	amountPaise    int32
	status         Status
	pickupCode     string
	pickupWindow   offer.PickupWindow
	paymentOrderID string
	collectedAt    *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewOrder(
	offerEntity *offer.Offer,
	customerID uuid.UUID,
	customerName, customerPhone string,
	quantity int32,
	paymentOrderID string,
) (*Order, error) {
	if quantity < 1 {
		return nil, ErrInvalidOrderQuantity
	}

	code, err := NewPickupCode()
	if err != nil {
		return nil, err
	}

	return &Order{
		id:             uuid.New(),
		offerID:        offerEntity.ID(),
		restaurantID:   offerEntity.RestaurantID(),
		customerID:     customerID,
		customerName:   customerName,
		customerPhone:  customerPhone,
		quantity:       quantity,
		amountPaise:    offerEntity.PricePaise() * quantity,
		status:         StatusPending,
		pickupCode:     code,
		pickupWindow:   offerEntity.PickupWindow(),
		paymentOrderID: paymentOrderID,
	}, nil
}

func ReconstructOrder(
	id, offerID, restaurantID, customerID uuid.UUID,
	customerName, customerPhone string,
	quantity, amountPaise int32,
	status Status,
	pickupCode string,
	pickupWindow offer.PickupWindow,
	paymentOrderID string,
	collectedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:             id,
		offerID:        offerID,
		restaurantID:   restaurantID,
		customerID:     customerID,
		customerName:   customerName,
		customerPhone:  customerPhone,
		quantity:       quantity,
		amountPaise:    amountPaise,
		status:         status,
		pickupCode:     pickupCode,
		pickupWindow:   pickupWindow,
		paymentOrderID: paymentOrderID,
		collectedAt:    collectedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Collect validates the customer's pickup code and marks the order
// collected. collectedAt is set exactly once.
func (o *Order) Collect(code string, now time.Time) error {
	if o.status == StatusCollected {
		return ErrAlreadyCollected
	}
	if !o.status.CanTransitionTo(StatusCollected) {
		return ErrNotCollectable
	}
	if o.pickupCode != code {
		return ErrPickupCodeMismatch
	}

	o.status = StatusCollected
	o.collectedAt = &now
	return nil
}

func (o *Order) ID() uuid.UUID                    { return o.id }
func (o *Order) OfferID() uuid.UUID               { return o.offerID }
func (o *Order) RestaurantID() uuid.UUID          { return o.restaurantID }
func (o *Order) CustomerID() uuid.UUID            { return o.customerID }
func (o *Order) CustomerName() string             { return o.customerName }
func (o *Order) CustomerPhone() string            { return o.customerPhone }
func (o *Order) Quantity() int32                  { return o.quantity }
func (o *Order) AmountPaise() int32               { return o.amountPaise }
func (o *Order) Status() Status                   { return o.status }
func (o *Order) PickupCode() string               { return o.pickupCode }
func (o *Order) PickupWindow() offer.PickupWindow { return o.pickupWindow }
func (o *Order) PaymentOrderID() string           { return o.paymentOrderID }
func (o *Order) CollectedAt() *time.Time          { return o.collectedAt }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) UpdatedAt() time.Time             { return o.updatedAt }
