package offer

import (
	"math"
	"time"
)

type PickupWindow struct {
	start time.Time
	end   time.Time
}

func NewPickupWindow(start, end time.Time) (PickupWindow, error) {
	if !start.Before(end) {
		return PickupWindow{}, ErrInvalidPickupWindow
	}
	return PickupWindow{start: start, end: end}, nil
}

func (w PickupWindow) Start() time.Time {
	return w.start
}

func (w PickupWindow) End() time.Time {
	return w.end
}

func (w PickupWindow) EndedAt(now time.Time) bool {
	return now.After(w.end)
}

// DiscountPercentage computes the stored marketing discount from the
// original value and the bag price, rounded to the nearest integer.
func DiscountPercentage(originalValuePaise, pricePaise int32) int32 {
	if originalValuePaise <= 0 {
		return 0
	}
	ratio := float64(originalValuePaise-pricePaise) / float64(originalValuePaise)
	return int32(math.Round(ratio * 100))
}
