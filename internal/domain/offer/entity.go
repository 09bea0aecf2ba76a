package offer

import (
	"time"

	"github.com/google/uuid"
)

// Offer is a surprise-bag listing. quantityAvailable is mutated only through
// the store's atomic reserve/restore primitives, never through this entity.
type Offer struct {
	id                 uuid.UUID
	restaurantID       uuid.UUID
	title              string
	description        *string
	imageURL           *string
	originalValuePaise int32
	pricePaise         int32
	discountPercentage int32
	quantityTotal      int32
	quantityAvailable  int32
	pickupWindow       PickupWindow
	isActive           bool
	isVegetarian       *bool
	isJain             *bool
	isVegan            *bool
	containsAlcohol    *bool
	cuisine            *string
	spiceLevel         *SpiceLevel
	foodCategory       *FoodCategory
	preparationTimeMin *int32
	allergens          *string
	createdAt          time.Time
	updatedAt          time.Time
}

type CreateSpec struct {
	RestaurantID       uuid.UUID
	Title              string
	Description        *string
	ImageURL           *string
	OriginalValuePaise int32
	PricePaise         int32
	QuantityTotal      int32
	PickupWindowStart  time.Time
	PickupWindowEnd    time.Time
	IsVegetarian       *bool
	IsJain             *bool
	IsVegan            *bool
	ContainsAlcohol    *bool
	Cuisine            *string
	SpiceLevel         *SpiceLevel
	FoodCategory       *FoodCategory
	PreparationTimeMin *int32
	Allergens          *string
}

func NewOffer(spec CreateSpec) (*Offer, error) {
	if spec.QuantityTotal < 1 {
		return nil, ErrInvalidQuantity
	}
	if spec.PricePaise <= 0 || spec.OriginalValuePaise <= 0 || spec.PricePaise > spec.OriginalValuePaise {
		return nil, ErrInvalidPrice
	}

	window, err := NewPickupWindow(spec.PickupWindowStart, spec.PickupWindowEnd)
	if err != nil {
		return nil, err
	}

	return &Offer{
		id:                 uuid.New(),
		restaurantID:       spec.RestaurantID,
		title:              spec.Title,
		description:        spec.Description,
		imageURL:           spec.ImageURL,
		originalValuePaise: spec.OriginalValuePaise,
		pricePaise:         spec.PricePaise,
		discountPercentage: DiscountPercentage(spec.OriginalValuePaise, spec.PricePaise),
		quantityTotal:      spec.QuantityTotal,
		quantityAvailable:  spec.QuantityTotal,
		pickupWindow:       window,
		isActive:           true,
		isVegetarian:       spec.IsVegetarian,
		isJain:             spec.IsJain,
		isVegan:            spec.IsVegan,
		containsAlcohol:    spec.ContainsAlcohol,
		cuisine:            spec.Cuisine,
		spiceLevel:         spec.SpiceLevel,
		foodCategory:       spec.FoodCategory,
		preparationTimeMin: spec.PreparationTimeMin,
		allergens:          spec.Allergens,
	}, nil
}

func ReconstructOffer(
	id, restaurantID uuid.UUID,
	title string,
	description, imageURL *string,
	originalValuePaise, pricePaise, discountPercentage, quantityTotal, quantityAvailable int32,
	window PickupWindow,
	isActive bool,
	isVegetarian, isJain, isVegan, containsAlcohol *bool,
	cuisine *string,
	spiceLevel *SpiceLevel,
	foodCategory *FoodCategory,
	preparationTimeMin *int32,
	allergens *string,
	createdAt, updatedAt time.Time,
) *Offer {
	return &Offer{
		id:                 id,
		restaurantID:       restaurantID,
		title:              title,
		description:        description,
		imageURL:           imageURL,
		originalValuePaise: originalValuePaise,
		pricePaise:         pricePaise,
		discountPercentage: discountPercentage,
		quantityTotal:      quantityTotal,
		quantityAvailable:  quantityAvailable,
		pickupWindow:       window,
		isActive:           isActive,
		isVegetarian:       isVegetarian,
		isJain:             isJain,
		isVegan:            isVegan,
		containsAlcohol:    containsAlcohol,
		cuisine:            cuisine,
		spiceLevel:         spiceLevel,
		foodCategory:       foodCategory,
		preparationTimeMin: preparationTimeMin,
		allergens:          allergens,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (o *Offer) ID() uuid.UUID               { return o.id }
func (o *Offer) RestaurantID() uuid.UUID     { return o.restaurantID }
func (o *Offer) Title() string               { return o.title }
func (o *Offer) Description() *string        { return o.description }
func (o *Offer) ImageURL() *string           { return o.imageURL }
func (o *Offer) OriginalValuePaise() int32   { return o.originalValuePaise }
func (o *Offer) PricePaise() int32           { return o.pricePaise }
func (o *Offer) DiscountPercentage() int32   { return o.discountPercentage }
func (o *Offer) QuantityTotal() int32        { return o.quantityTotal }
func (o *Offer) QuantityAvailable() int32    { return o.quantityAvailable }
func (o *Offer) PickupWindow() PickupWindow  { return o.pickupWindow }
func (o *Offer) IsActive() bool              { return o.isActive }
func (o *Offer) IsVegetarian() *bool         { return o.isVegetarian }
func (o *Offer) IsJain() *bool               { return o.isJain }
func (o *Offer) IsVegan() *bool              { return o.isVegan }
func (o *Offer) ContainsAlcohol() *bool      { return o.containsAlcohol }
func (o *Offer) Cuisine() *string            { return o.cuisine }
func (o *Offer) SpiceLevel() *SpiceLevel     { return o.spiceLevel }
func (o *Offer) FoodCategory() *FoodCategory { return o.foodCategory }
func (o *Offer) PreparationTimeMin() *int32  { return o.preparationTimeMin }
func (o *Offer) Allergens() *string          { return o.allergens }
func (o *Offer) CreatedAt() time.Time        { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time        { return o.updatedAt }
