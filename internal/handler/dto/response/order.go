package response

import (
	"time"

	"github.com/google/uuid"

	"mealpedeal/internal/usecase/commands"
	"mealpedeal/internal/usecase/queries"
)

type OrderResponse struct {
	ID                uuid.UUID  `json:"id"`
	OfferID           uuid.UUID  `json:"offerId"`
	OfferTitle        string     `json:"offerTitle"`
	RestaurantID      uuid.UUID  `json:"restaurantId"`
	RestaurantName    string     `json:"restaurantName"`
	Quantity          int32      `json:"quantity"`
	AmountPaise       int32      `json:"amountPaise"`
	Status            string     `json:"status"`
	PickupCode        string     `json:"pickupCode"`
	PickupWindowStart time.Time  `json:"pickupWindowStart"`
	PickupWindowEnd   time.Time  `json:"pickupWindowEnd"`
	CollectedAt       *time.Time `json:"collectedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// PlaceOrderResponse bundles the order with the gateway fields the client
// needs to open the checkout flow.
type PlaceOrderResponse struct {
	Order          *OrderResponse `json:"order"`
	PaymentOrderID string         `json:"paymentOrderId"`
	AmountPaise    int32          `json:"amountPaise"`
	Currency       string         `json:"currency"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		ID:                v.ID,
		OfferID:           v.OfferID,
		OfferTitle:        v.OfferTitle,
		RestaurantID:      v.RestaurantID,
		RestaurantName:    v.RestaurantName,
		Quantity:          v.Quantity,
		AmountPaise:       v.AmountPaise,
		Status:            v.Status,
		PickupCode:        v.PickupCode,
		PickupWindowStart: v.PickupWindowStart,
		PickupWindowEnd:   v.PickupWindowEnd,
		CollectedAt:       v.CollectedAt,
		CreatedAt:         v.CreatedAt,
	}
}

func FromOrderViews(views []*queries.OrderView) []*OrderResponse {
	responses := make([]*OrderResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromOrderView(v))
	}
	return responses
}

func FromPlaceOrderResult(result *commands.PlaceOrderResult) *PlaceOrderResponse {
	return &PlaceOrderResponse{
		Order:          FromOrderView(result.Order),
		PaymentOrderID: result.PaymentOrderID,
		AmountPaise:    result.AmountPaise,
		Currency:       result.Currency,
	}
}
