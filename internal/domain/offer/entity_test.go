//go:build unit

package offer_test

import (
	"testing"
	"time"

	"mealpedeal/internal/domain/offer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpec() offer.CreateSpec {
	start := time.Now().Add(2 * time.Hour)
	return offer.CreateSpec{
		RestaurantID:       uuid.New(),
		Title:              "Evening Surprise Bag",
		OriginalValuePaise: 20000,
		PricePaise:         10000,
		QuantityTotal:      5,
		PickupWindowStart:  start,
		PickupWindowEnd:    start.Add(2 * time.Hour),
	}
}

func TestNewOffer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		o, err := offer.NewOffer(validSpec())
		require.NoError(t, err)
		require.NotNil(t, o)

		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.True(t, o.IsActive())
		assert.Equal(t, int32(5), o.QuantityTotal())
		assert.Equal(t, int32(5), o.QuantityAvailable())
	})

	t.Run("discount stored at creation", func(t *testing.T) {
		spec := validSpec()
		spec.OriginalValuePaise = 20000
		spec.PricePaise = 10000

		o, err := offer.NewOffer(spec)
		require.NoError(t, err)
		assert.Equal(t, int32(50), o.DiscountPercentage())
	})

	t.Run("quantity total below one", func(t *testing.T) {
		spec := validSpec()
		spec.QuantityTotal = 0

		_, err := offer.NewOffer(spec)
		assert.ErrorIs(t, err, offer.ErrInvalidQuantity)
	})

	t.Run("price above original value", func(t *testing.T) {
		spec := validSpec()
		spec.PricePaise = spec.OriginalValuePaise + 1

		_, err := offer.NewOffer(spec)
		assert.ErrorIs(t, err, offer.ErrInvalidPrice)
	})

	t.Run("inverted pickup window", func(t *testing.T) {
		spec := validSpec()
		spec.PickupWindowEnd = spec.PickupWindowStart.Add(-time.Hour)

		_, err := offer.NewOffer(spec)
		assert.ErrorIs(t, err, offer.ErrInvalidPickupWindow)
	})
}

func TestDiscountPercentage(t *testing.T) {
	testCases := []struct {
		name     string
		original int32
		price    int32
		expected int32
	}{
		{name: "half price", original: 20000, price: 10000, expected: 50},
		{name: "rounded up", original: 30000, price: 20000, expected: 33},
		{name: "no discount", original: 10000, price: 10000, expected: 0},
		{name: "zero original value", original: 0, price: 10000, expected: 0},
		{name: "two thirds off", original: 30000, price: 10000, expected: 67},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, offer.DiscountPercentage(tc.original, tc.price))
		})
	}
}

func TestParseSpiceLevel(t *testing.T) {
	for _, valid := range []string{"MILD", "MEDIUM", "SPICY"} {
		level, err := offer.ParseSpiceLevel(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(level))
	}

	_, err := offer.ParseSpiceLevel("EXTRA_HOT")
	assert.ErrorIs(t, err, offer.ErrInvalidSpiceLevel)
}

func TestParseFoodCategory(t *testing.T) {
	for _, valid := range []string{"BREAKFAST", "LUNCH", "DINNER", "SNACKS", "SWEETS", "BEVERAGES"} {
		category, err := offer.ParseFoodCategory(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(category))
	}

	_, err := offer.ParseFoodCategory("BRUNCH")
	assert.ErrorIs(t, err, offer.ErrInvalidFoodCategory)
}
