package booking

import "errors"

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// Split is the free/paid division of one booking. The decision itself is made
// server-side: the pool draw is a single atomic clamped decrement and Settle
// is replayed against the quantity the pool actually granted, so a stale
// client snapshot can never overdraw the pool.
type Split struct {
	FreeQuantity int32
	PaidQuantity int32
}

// WantFree returns how many units a booking requests from the shared pool.
func WantFree(quantity int32, preferFree bool) int32 {
	if !preferFree {
		return 0
	}
	return quantity
}

// Settle divides a booking against the units the pool actually granted.
// Invariant: FreeQuantity + PaidQuantity == quantity for any granted >= 0.
func Settle(quantity, granted int32) (Split, error) {
	if quantity <= 0 {
		return Split{}, ErrInvalidQuantity
	}
	if granted < 0 {
		granted = 0
	}
	if granted > quantity {
		granted = quantity
	}
	return Split{
		FreeQuantity: granted,
		PaidQuantity: quantity - granted,
	}, nil
}

// Shorted reports whether the pool granted less free stock than requested.
func (s Split) Shorted(wanted int32) bool {
	return s.FreeQuantity < wanted
}

// ChargeCents is the amount the paid portion adds to the member's tab.
func (s Split) ChargeCents(unitPriceCents int32) int64 {
	return int64(s.PaidQuantity) * int64(unitPriceCents)
}
