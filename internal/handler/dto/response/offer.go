package response

import (
	"time"

	"github.com/google/uuid"

	"mealpedeal/internal/usecase/queries"
)

type OfferResponse struct {
	ID                 uuid.UUID `json:"id"`
	RestaurantID       uuid.UUID `json:"restaurantId"`
	RestaurantName     string    `json:"restaurantName"`
	Title              string    `json:"title"`
	Description        *string   `json:"description,omitempty"`
	ImageURL           *string   `json:"imageUrl,omitempty"`
	OriginalValuePaise int32     `json:"originalValuePaise"`
	PricePaise         int32     `json:"pricePaise"`
	DiscountPercentage int32     `json:"discountPercentage"`
	QuantityAvailable  int32     `json:"quantityAvailable"`
	PickupWindowStart  time.Time `json:"pickupWindowStart"`
	PickupWindowEnd    time.Time `json:"pickupWindowEnd"`
	IsActive           bool      `json:"isActive"`
	IsVegetarian       *bool     `json:"isVegetarian,omitempty"`
	IsJain             *bool     `json:"isJain,omitempty"`
	IsVegan            *bool     `json:"isVegan,omitempty"`
	Cuisine            *string   `json:"cuisine,omitempty"`
	SpiceLevel         *string   `json:"spiceLevel,omitempty"`
	FoodCategory       *string   `json:"foodCategory,omitempty"`
	PreparationTimeMin *int32    `json:"preparationTimeMin,omitempty"`
	Allergens          *string   `json:"allergens,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

type NearbyOfferResponse struct {
	OfferResponse
	DistanceKm float64 `json:"distanceKm"`
}

func FromOfferView(v *queries.OfferView) *OfferResponse {
	return &OfferResponse{
		ID:                 v.ID,
		RestaurantID:       v.RestaurantID,
		RestaurantName:     v.RestaurantName,
		Title:              v.Title,
		Description:        v.Description,
		ImageURL:           v.ImageURL,
		OriginalValuePaise: v.OriginalValuePaise,
		PricePaise:         v.PricePaise,
		DiscountPercentage: v.DiscountPercentage,
		QuantityAvailable:  v.QuantityAvailable,
		PickupWindowStart:  v.PickupWindowStart,
		PickupWindowEnd:    v.PickupWindowEnd,
		IsActive:           v.IsActive,
		IsVegetarian:       v.IsVegetarian,
		IsJain:             v.IsJain,
		IsVegan:            v.IsVegan,
		Cuisine:            v.Cuisine,
		SpiceLevel:         v.SpiceLevel,
		FoodCategory:       v.FoodCategory,
		PreparationTimeMin: v.PreparationTimeMin,
		Allergens:          v.Allergens,
		CreatedAt:          v.CreatedAt,
	}
}

func FromOfferViews(views []*queries.OfferView) []*OfferResponse {
	responses := make([]*OfferResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromOfferView(v))
	}
	return responses
}

func FromNearbyOfferItem(item *queries.NearbyOfferItem) *NearbyOfferResponse {
	return &NearbyOfferResponse{
		OfferResponse: *FromOfferView(&item.OfferView),
		DistanceKm:    item.DistanceKm,
	}
}

func FromNearbyOfferItems(items []*queries.NearbyOfferItem) []*NearbyOfferResponse {
	responses := make([]*NearbyOfferResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, FromNearbyOfferItem(item))
	}
	return responses
}
