//go:build unit

package order_test

import (
	"testing"
	"time"

	"mealpedeal/internal/domain/offer"
	"mealpedeal/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOffer(t *testing.T) *offer.Offer {
	t.Helper()
	start := time.Now().Add(time.Hour)
	o, err := offer.NewOffer(offer.CreateSpec{
		RestaurantID:       uuid.New(),
		Title:              "Lunch Surprise Bag",
		OriginalValuePaise: 30000,
		PricePaise:         12000,
		QuantityTotal:      3,
		PickupWindowStart:  start,
		PickupWindowEnd:    start.Add(3 * time.Hour),
	})
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	offerEntity := buildOffer(t)

	t.Run("snapshot from offer", func(t *testing.T) {
		o, err := order.NewOrder(offerEntity, uuid.New(), "Priya", "+919876543210", 1, "order_rzp123")
		require.NoError(t, err)

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, offerEntity.ID(), o.OfferID())
		assert.Equal(t, offerEntity.RestaurantID(), o.RestaurantID())
		assert.Equal(t, offerEntity.PickupWindow().Start(), o.PickupWindow().Start())
		assert.Equal(t, offerEntity.PickupWindow().End(), o.PickupWindow().End())
		assert.Equal(t, int32(12000), o.AmountPaise())
		assert.Len(t, o.PickupCode(), 8)
		assert.Nil(t, o.CollectedAt())
	})

	t.Run("amount scales with quantity", func(t *testing.T) {
		o, err := order.NewOrder(offerEntity, uuid.New(), "Priya", "+919876543210", 2, "order_rzp124")
		require.NoError(t, err)
		assert.Equal(t, int32(24000), o.AmountPaise())
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		_, err := order.NewOrder(offerEntity, uuid.New(), "Priya", "+919876543210", 0, "order_rzp125")
		assert.ErrorIs(t, err, order.ErrInvalidOrderQuantity)
	})

	t.Run("pickup codes are unique", func(t *testing.T) {
		seen := map[string]bool{}
		for range 50 {
			o, err := order.NewOrder(offerEntity, uuid.New(), "Priya", "+919876543210", 1, "order_rzpx")
			require.NoError(t, err)
			assert.False(t, seen[o.PickupCode()], "duplicate pickup code %s", o.PickupCode())
			seen[o.PickupCode()] = true
		}
	})
}

func TestStatusTransitions(t *testing.T) {
	testCases := []struct {
		name    string
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{name: "pending to reserved", from: order.StatusPending, to: order.StatusReserved, allowed: true},
		{name: "pending to cancelled", from: order.StatusPending, to: order.StatusCancelled, allowed: true},
		{name: "pending to collected", from: order.StatusPending, to: order.StatusCollected, allowed: false},
		{name: "reserved to collected", from: order.StatusReserved, to: order.StatusCollected, allowed: true},
		{name: "reserved to expired", from: order.StatusReserved, to: order.StatusExpired, allowed: true},
		{name: "reserved to cancelled", from: order.StatusReserved, to: order.StatusCancelled, allowed: true},
		{name: "expired is terminal", from: order.StatusExpired, to: order.StatusReserved, allowed: false},
		{name: "cancelled is terminal", from: order.StatusCancelled, to: order.StatusReserved, allowed: false},
		{name: "collected is terminal", from: order.StatusCollected, to: order.StatusExpired, allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatusHoldsStock(t *testing.T) {
	assert.True(t, order.StatusPending.HoldsStock())
	assert.True(t, order.StatusReserved.HoldsStock())
	assert.False(t, order.StatusCollected.HoldsStock())
	assert.False(t, order.StatusCancelled.HoldsStock())
	assert.False(t, order.StatusExpired.HoldsStock())
	assert.False(t, order.StatusDelivered.HoldsStock())
}

func TestCollect(t *testing.T) {
	offerEntity := buildOffer(t)
	now := time.Now()

	newReserved := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(offerEntity, uuid.New(), "Priya", "+919876543210", 1, "order_rzp1")
		require.NoError(t, err)
		return order.ReconstructOrder(
			o.ID(), o.OfferID(), o.RestaurantID(), o.CustomerID(),
			o.CustomerName(), o.CustomerPhone(), o.Quantity(), o.AmountPaise(),
			order.StatusReserved, o.PickupCode(), o.PickupWindow(), o.PaymentOrderID(),
			nil, now, now,
		)
	}

	t.Run("success sets collected at once", func(t *testing.T) {
		o := newReserved(t)
		require.NoError(t, o.Collect(o.PickupCode(), now))
		assert.Equal(t, order.StatusCollected, o.Status())
		require.NotNil(t, o.CollectedAt())
		assert.Equal(t, now, *o.CollectedAt())

		err := o.Collect(o.PickupCode(), now.Add(time.Minute))
		assert.ErrorIs(t, err, order.ErrAlreadyCollected)
		assert.Equal(t, now, *o.CollectedAt())
	})

	t.Run("wrong code rejected", func(t *testing.T) {
		o := newReserved(t)
		err := o.Collect("WRONGCOD", now)
		assert.ErrorIs(t, err, order.ErrPickupCodeMismatch)
		assert.Equal(t, order.StatusReserved, o.Status())
	})

	t.Run("pending cannot be collected", func(t *testing.T) {
		o, err := order.NewOrder(offerEntity, uuid.New(), "Priya", "+919876543210", 1, "order_rzp2")
		require.NoError(t, err)
		assert.ErrorIs(t, o.Collect(o.PickupCode(), now), order.ErrNotCollectable)
	})
}
