package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type OfferView struct {
	ID                 uuid.UUID `json:"id"`
	RestaurantID       uuid.UUID `json:"restaurant_id"`
	RestaurantName     string    `json:"restaurant_name"`
	Title              string    `json:"title"`
	Description        *string   `json:"description,omitempty"`
	ImageURL           *string   `json:"image_url,omitempty"`
	OriginalValuePaise int32     `json:"original_value_paise"`
	PricePaise         int32     `json:"price_paise"`
	DiscountPercentage int32     `json:"discount_percentage"`
	QuantityAvailable  int32     `json:"quantity_available"`
	PickupWindowStart  time.Time `json:"pickup_window_start"`
	PickupWindowEnd    time.Time `json:"pickup_window_end"`
	IsActive           bool      `json:"is_active"`
	IsVegetarian       *bool     `json:"is_vegetarian,omitempty"`
	IsJain             *bool     `json:"is_jain,omitempty"`
	IsVegan            *bool     `json:"is_vegan,omitempty"`
	Cuisine            *string   `json:"cuisine,omitempty"`
	SpiceLevel         *string   `json:"spice_level,omitempty"`
	FoodCategory       *string   `json:"food_category,omitempty"`
	PreparationTimeMin *int32    `json:"preparation_time_min,omitempty"`
	Allergens          *string   `json:"allergens,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// NearbyOfferItem augments an offer with the haversine distance to the
// caller's coordinates.
type NearbyOfferItem struct {
	OfferView
	DistanceKm float64 `json:"distance_km"`
}

type OrderView struct {
	ID                uuid.UUID  `json:"id"`
	OfferID           uuid.UUID  `json:"offer_id"`
	OfferTitle        string     `json:"offer_title"`
	RestaurantID      uuid.UUID  `json:"restaurant_id"`
	RestaurantName    string     `json:"restaurant_name"`
	CustomerID        uuid.UUID  `json:"customer_id"`
	Quantity          int32      `json:"quantity"`
	AmountPaise       int32      `json:"amount_paise"`
	Status            string     `json:"status"`
	PickupCode        string     `json:"pickup_code"`
	PickupWindowStart time.Time  `json:"pickup_window_start"`
	PickupWindowEnd   time.Time  `json:"pickup_window_end"`
	PaymentOrderID    string     `json:"payment_order_id"`
	CollectedAt       *time.Time `json:"collected_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}
