package post

import (
	"fmt"

	"sharebite/internal/pkg/errs"
)

// DeliveryStatus is the wire representation of the delivery leg of a post's
// lifecycle: pending until pickup, then in_transit, then delivered. It is
// derived from State (see State.DeliveryStatus) and moves strictly forward.
type DeliveryStatus string

const (
	// DeliveryPending means no delivery movement has been reported yet.
	DeliveryPending DeliveryStatus = "pending"
	// DeliveryInTransit means the delivery partner picked the food up.
	DeliveryInTransit DeliveryStatus = "in_transit"
	// DeliveryDelivered means the food reached its destination.
	DeliveryDelivered DeliveryStatus = "delivered"
)

// ParseDeliveryStatus converts external input into a DeliveryStatus.
// Returns a validation error for anything outside the enum.
func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	switch DeliveryStatus(s) {
	case DeliveryPending, DeliveryInTransit, DeliveryDelivered:
		return DeliveryStatus(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
			fmt.Errorf("%q is not one of pending, in_transit, delivered", s))
	}
}

// String implements fmt.Stringer.
func (d DeliveryStatus) String() string {
	return string(d)
}
