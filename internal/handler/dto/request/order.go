package request

import (
	"github.com/google/uuid"
)

type PlaceOrderRequest struct {
	OfferID       uuid.UUID `json:"offer_id" binding:"required"`
	Quantity      int32     `json:"quantity" binding:"required,gte=1"`
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerPhone string    `json:"customer_phone" binding:"required"`
}

type CollectOrderRequest struct {
	PickupCode string `json:"pickup_code" binding:"required,len=8"`
}

// PaymentWebhookRequest is the subset of the gateway's webhook envelope we
// act on. The raw body is verified against the signature header before this
// structure is ever decoded.
type PaymentWebhookRequest struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Status  string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}
