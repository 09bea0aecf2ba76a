//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	reqdto "mealpedeal/internal/handler/dto/request"
	"mealpedeal/internal/usecase/queries"
)

type OfferBuilder struct {
	ID                 uuid.UUID
	RestaurantID       uuid.UUID
	RestaurantName     string
	Title              string
	OriginalValuePaise int32
	PricePaise         int32
	DiscountPercentage int32
	QuantityAvailable  int32
	PickupWindowStart  time.Time
	PickupWindowEnd    time.Time
	IsVegetarian       *bool
	CreatedAt          time.Time
}

func NewOfferBuilder() *OfferBuilder {
	now := time.Now()
	return &OfferBuilder{
		ID:                 uuid.New(),
		RestaurantID:       uuid.New(),
		RestaurantName:     "Udupi Grand",
		Title:              "Evening surprise bag",
		OriginalValuePaise: 29900,
		PricePaise:         14900,
		DiscountPercentage: 50,
		QuantityAvailable:  5,
		PickupWindowStart:  now.Add(2 * time.Hour),
		PickupWindowEnd:    now.Add(4 * time.Hour),
		CreatedAt:          now,
	}
}

func (b *OfferBuilder) WithTitle(title string) *OfferBuilder {
	b.Title = title
	return b
}

func (b *OfferBuilder) WithAvailable(n int32) *OfferBuilder {
	b.QuantityAvailable = n
	return b
}

func (b *OfferBuilder) WithVegetarian(v bool) *OfferBuilder {
	b.IsVegetarian = &v
	return b
}

func (b *OfferBuilder) BuildCreateRequestDTO() reqdto.CreateOfferRequest {
	return reqdto.CreateOfferRequest{
		Title:              b.Title,
		OriginalValuePaise: b.OriginalValuePaise,
		PricePaise:         b.PricePaise,
		Quantity:           b.QuantityAvailable,
		PickupWindowStart:  b.PickupWindowStart,
		PickupWindowEnd:    b.PickupWindowEnd,
		IsVegetarian:       b.IsVegetarian,
	}
}

func (b *OfferBuilder) BuildUpdateRequestDTO() reqdto.UpdateOfferRequest {
	return reqdto.UpdateOfferRequest{
		Title:      &b.Title,
		PricePaise: &b.PricePaise,
	}
}

func (b *OfferBuilder) BuildView() *queries.OfferView {
	return &queries.OfferView{
		ID:                 b.ID,
		RestaurantID:       b.RestaurantID,
		RestaurantName:     b.RestaurantName,
		Title:              b.Title,
		OriginalValuePaise: b.OriginalValuePaise,
		PricePaise:         b.PricePaise,
		DiscountPercentage: b.DiscountPercentage,
		QuantityAvailable:  b.QuantityAvailable,
		PickupWindowStart:  b.PickupWindowStart,
		PickupWindowEnd:    b.PickupWindowEnd,
		IsActive:           true,
		IsVegetarian:       b.IsVegetarian,
		CreatedAt:          b.CreatedAt,
	}
}

func (b *OfferBuilder) BuildNearbyItem(distanceKm float64) *queries.NearbyOfferItem {
	return &queries.NearbyOfferItem{
		OfferView:  *b.BuildView(),
		DistanceKm: distanceKm,
	}
}
