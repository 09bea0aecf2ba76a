//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	"mealpedeal/internal/domain/order"
	reqdto "mealpedeal/internal/handler/dto/request"
	"mealpedeal/internal/usecase/commands"
	"mealpedeal/internal/usecase/queries"
)

type OrderBuilder struct {
	ID             uuid.UUID
	OfferID        uuid.UUID
	OfferTitle     string
	RestaurantID   uuid.UUID
	RestaurantName string
	CustomerID     uuid.UUID
	Quantity       int32
	AmountPaise    int32
	Status         order.Status
	PickupCode     string
	WindowStart    time.Time
	WindowEnd      time.Time
	PaymentOrderID string
	CreatedAt      time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Now()
	return &OrderBuilder{
		ID:             uuid.New(),
		OfferID:        uuid.New(),
		OfferTitle:     "Evening surprise bag",
		RestaurantID:   uuid.New(),
		RestaurantName: "Udupi Grand",
		CustomerID:     uuid.New(),
		Quantity:       1,
		AmountPaise:    14900,
		Status:         order.StatusReserved,
		PickupCode:     "AB12CD34",
		WindowStart:    now.Add(2 * time.Hour),
		WindowEnd:      now.Add(4 * time.Hour),
		PaymentOrderID: "order_RZPTEST01",
		CreatedAt:      now,
	}
}

func (b *OrderBuilder) WithStatus(s order.Status) *OrderBuilder {
	b.Status = s
	return b
}

func (b *OrderBuilder) WithCustomerID(id uuid.UUID) *OrderBuilder {
	b.CustomerID = id
	return b
}

func (b *OrderBuilder) BuildPlaceRequestDTO() reqdto.PlaceOrderRequest {
	return reqdto.PlaceOrderRequest{
		OfferID:       b.OfferID,
		Quantity:      b.Quantity,
		CustomerName:  "Asha",
		CustomerPhone: "9876543210",
	}
}

func (b *OrderBuilder) BuildCollectRequestDTO() reqdto.CollectOrderRequest {
	return reqdto.CollectOrderRequest{PickupCode: b.PickupCode}
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	return &queries.OrderView{
		ID:                b.ID,
		OfferID:           b.OfferID,
		OfferTitle:        b.OfferTitle,
		RestaurantID:      b.RestaurantID,
		RestaurantName:    b.RestaurantName,
		CustomerID:        b.CustomerID,
		Quantity:          b.Quantity,
		AmountPaise:       b.AmountPaise,
		Status:            string(b.Status),
		PickupCode:        b.PickupCode,
		PickupWindowStart: b.WindowStart,
		PickupWindowEnd:   b.WindowEnd,
		PaymentOrderID:    b.PaymentOrderID,
		CreatedAt:         b.CreatedAt,
	}
}

func (b *OrderBuilder) BuildPlaceResult() *commands.PlaceOrderResult {
	return &commands.PlaceOrderResult{
		Order:          b.BuildView(),
		PaymentOrderID: b.PaymentOrderID,
		AmountPaise:    b.AmountPaise,
		Currency:       "INR",
	}
}
