package request

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"mealpedeal/internal/domain/offer"
	"mealpedeal/internal/infra/repository"
)

type CreateOfferRequest struct {
	Title              string    `json:"title" binding:"required"`
	Description        *string   `json:"description,omitempty"`
	ImageURL           *string   `json:"image_url,omitempty"`
	OriginalValuePaise int32     `json:"original_value_paise" binding:"required,gt=0"`
	PricePaise         int32     `json:"price_paise" binding:"required,gt=0"`
	Quantity           int32     `json:"quantity" binding:"required,gte=1"`
	PickupWindowStart  time.Time `json:"pickup_window_start" binding:"required"`
	PickupWindowEnd    time.Time `json:"pickup_window_end" binding:"required"`
	IsVegetarian       *bool     `json:"is_vegetarian,omitempty"`
	IsJain             *bool     `json:"is_jain,omitempty"`
	IsVegan            *bool     `json:"is_vegan,omitempty"`
	ContainsAlcohol    *bool     `json:"contains_alcohol,omitempty"`
	Cuisine            *string   `json:"cuisine,omitempty"`
	SpiceLevel         *string   `json:"spice_level,omitempty"`
	FoodCategory       *string   `json:"food_category,omitempty"`
	PreparationTimeMin *int32    `json:"preparation_time_min,omitempty"`
	Allergens          *string   `json:"allergens,omitempty"`
}

func (r CreateOfferRequest) ToDomain(restaurantID uuid.UUID) (*offer.Offer, error) {
	spice, err := parseOptionalSpiceLevel(r.SpiceLevel)
	if err != nil {
		return nil, err
	}
	category, err := parseOptionalFoodCategory(r.FoodCategory)
	if err != nil {
		return nil, err
	}

	return offer.NewOffer(offer.CreateSpec{
		RestaurantID:       restaurantID,
		Title:              strings.TrimSpace(r.Title),
		Description:        r.Description,
		ImageURL:           r.ImageURL,
		OriginalValuePaise: r.OriginalValuePaise,
		PricePaise:         r.PricePaise,
		QuantityTotal:      r.Quantity,
		PickupWindowStart:  r.PickupWindowStart,
		PickupWindowEnd:    r.PickupWindowEnd,
		IsVegetarian:       r.IsVegetarian,
		IsJain:             r.IsJain,
		IsVegan:            r.IsVegan,
		ContainsAlcohol:    r.ContainsAlcohol,
		Cuisine:            r.Cuisine,
		SpiceLevel:         spice,
		FoodCategory:       category,
		PreparationTimeMin: r.PreparationTimeMin,
		Allergens:          r.Allergens,
	})
}

type UpdateOfferRequest struct {
	Title             *string    `json:"title,omitempty"`
	Description       *string    `json:"description,omitempty"`
	ImageURL          *string    `json:"image_url,omitempty"`
	PricePaise        *int32     `json:"price_paise,omitempty" binding:"omitempty,gt=0"`
	PickupWindowStart *time.Time `json:"pickup_window_start,omitempty"`
	PickupWindowEnd   *time.Time `json:"pickup_window_end,omitempty"`
	IsActive          *bool      `json:"is_active,omitempty"`
	IsVegetarian      *bool      `json:"is_vegetarian,omitempty"`
	IsJain            *bool      `json:"is_jain,omitempty"`
	IsVegan           *bool      `json:"is_vegan,omitempty"`
	Cuisine           *string    `json:"cuisine,omitempty"`
	SpiceLevel        *string    `json:"spice_level,omitempty"`
	FoodCategory      *string    `json:"food_category,omitempty"`
}

func (r UpdateOfferRequest) ToPatch() (repository.OfferPatch, error) {
	spice, err := parseOptionalSpiceLevel(r.SpiceLevel)
	if err != nil {
		return repository.OfferPatch{}, err
	}
	category, err := parseOptionalFoodCategory(r.FoodCategory)
	if err != nil {
		return repository.OfferPatch{}, err
	}

	return repository.OfferPatch{
		Title:             r.Title,
		Description:       r.Description,
		ImageURL:          r.ImageURL,
		PricePaise:        r.PricePaise,
		PickupWindowStart: r.PickupWindowStart,
		PickupWindowEnd:   r.PickupWindowEnd,
		IsActive:          r.IsActive,
		IsVegetarian:      r.IsVegetarian,
		IsJain:            r.IsJain,
		IsVegan:           r.IsVegan,
		Cuisine:           r.Cuisine,
		SpiceLevel:        spice,
		FoodCategory:      category,
	}, nil
}

func parseOptionalSpiceLevel(s *string) (*offer.SpiceLevel, error) {
	if s == nil {
		return nil, nil
	}
	level, err := offer.ParseSpiceLevel(*s)
	if err != nil {
		return nil, err
	}
	return &level, nil
}

func parseOptionalFoodCategory(s *string) (*offer.FoodCategory, error) {
	if s == nil {
		return nil, nil
	}
	category, err := offer.ParseFoodCategory(*s)
	if err != nil {
		return nil, err
	}
	return &category, nil
}
