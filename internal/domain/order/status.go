package order

import "errors"

var ErrInvalidTransition = errors.New("invalid order status transition")

// Status of an order. The pickup (surprise-bag) flow only moves through
// PENDING, RESERVED, COLLECTED, CANCELLED and EXPIRED; the delivery statuses
// exist for regular orders and never hold offer stock.
type Status string

const (
	StatusPlacing    Status = "PLACING"
	StatusPending    Status = "PENDING"
	StatusPreparing  Status = "PREPARING"
	StatusReady      Status = "READY"
	StatusDelivering Status = "DELIVERING"
	StatusDelivered  Status = "DELIVERED"
	StatusReserved   Status = "RESERVED"
	StatusCollected  Status = "COLLECTED"
	StatusCancelled  Status = "CANCELLED"
	StatusExpired    Status = "EXPIRED"
)

var pickupTransitions = map[Status][]Status{
	StatusPending:  {StatusReserved, StatusCancelled},
	StatusReserved: {StatusCollected, StatusCancelled, StatusExpired},
}

// CanTransitionTo reports whether the pickup-flow state machine allows
// moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range pickupTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further pickup-flow transition is possible.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCollected, StatusCancelled, StatusExpired:
		return true
	}
	return false
}

// HoldsStock reports whether an order in this status currently holds a
// decremented offer unit. Exactly these statuses are eligible for the
// compensating restore when the order terminates without collection.
func (s Status) HoldsStock() bool {
	return s == StatusPending || s == StatusReserved
}
