package offer

import "errors"

var (
	ErrInvalidQuantity     = errors.New("quantity total must be at least 1")
	ErrInvalidPrice        = errors.New("price must be positive and not exceed original value")
	ErrInvalidPickupWindow = errors.New("pickup window start must be before end")
	ErrInvalidSpiceLevel   = errors.New("invalid spice level")
	ErrInvalidFoodCategory = errors.New("invalid food category")
)

type SpiceLevel string

const (
	SpiceMild   SpiceLevel = "MILD"
	SpiceMedium SpiceLevel = "MEDIUM"
	SpiceSpicy  SpiceLevel = "SPICY"
)

func ParseSpiceLevel(s string) (SpiceLevel, error) {
	switch SpiceLevel(s) {
	case SpiceMild, SpiceMedium, SpiceSpicy:
		return SpiceLevel(s), nil
	}
	return "", ErrInvalidSpiceLevel
}

type FoodCategory string

const (
	CategoryBreakfast FoodCategory = "BREAKFAST"
	CategoryLunch     FoodCategory = "LUNCH"
	CategoryDinner    FoodCategory = "DINNER"
	CategorySnacks    FoodCategory = "SNACKS"
	CategorySweets    FoodCategory = "SWEETS"
	CategoryBeverages FoodCategory = "BEVERAGES"
)

func ParseFoodCategory(s string) (FoodCategory, error) {
	switch FoodCategory(s) {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnacks, CategorySweets, CategoryBeverages:
		return FoodCategory(s), nil
	}
	return "", ErrInvalidFoodCategory
}
