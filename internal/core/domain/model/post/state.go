package post

import (
	"fmt"

	"sharebite/internal/pkg/errs"
)

// State represents the lifecycle state of a donation post. It implements a
// state machine with defined transitions so posts follow the correct
// coordination workflow.
//
// State transitions:
//
//	Created ──assign-ngo──> NgoAssigned ──accept──> NgoAccepted ──assign-delivery──> DeliveryAssigned
//	   ^                        │                       │                                  │
//	   └────────reject──────────┴───────────────────────┘                            mark-in-transit
//	                                                                                       │
//	                                                                                       v
//	                                                  Delivered <──mark-delivered── InTransit
//
// Delivered is terminal. Any transition whose guard fails is rejected with an
// InvalidTransitionError; the state is never coerced.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unknown State = iota

	// Created is the initial state: the post exists but no NGO is assigned.
	// Posts in this state are picked up by the assignment sweep.
	Created

	// NgoAssigned means an NGO has been routed the post and has not yet
	// decided on it.
	NgoAssigned

	// NgoAccepted means the assigned NGO accepted the post; it now awaits a
	// delivery partner.
	NgoAccepted

	// DeliveryAssigned means a delivery partner holds the post and has not
	// started moving it.
	DeliveryAssigned

	// InTransit means the delivery partner reported pickup.
	InTransit

	// Delivered is the terminal state: the food reached its destination.
	Delivered
)

// getStateStrings returns every State mapped to its string representation.
func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:          "Unknown",
		Created:          "Created",
		NgoAssigned:      "NgoAssigned",
		NgoAccepted:      "NgoAccepted",
		DeliveryAssigned: "DeliveryAssigned",
		InTransit:        "InTransit",
		Delivered:        "Delivered",
	}
}

// getValidStateStrings returns only reachable states, for validation.
func getValidStateStrings() map[State]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[State]string{
		Created:          "Created",
		NgoAssigned:      "NgoAssigned",
		NgoAccepted:      "NgoAccepted",
		DeliveryAssigned: "DeliveryAssigned",
		InTransit:        "InTransit",
		Delivered:        "Delivered",
	}
}

// Validate checks that the State value is one of the reachable states.
// Used when reconstructing posts from persistence or external input.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid",
			fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String returns the human-readable name of the state. It implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsAccepted reports whether the state implies the assigned NGO accepted the
// post. Every state from NgoAccepted onward keeps that fact.
func (s State) IsAccepted() bool {
	return s == NgoAccepted || s == DeliveryAssigned || s == InTransit || s == Delivered
}

// IsTerminal reports whether no further transitions are legal.
func (s State) IsTerminal() bool {
	return s == Delivered
}

// AssignNgo transitions the state to NgoAssigned.
//
// Valid from: Created. Everything else fails: a post already routed to an NGO
// must be rejected before it can be re-routed.
func (s State) AssignNgo() (State, error) {
	if s != Created {
		return 0, errs.NewInvalidTransitionError("assign-ngo",
			fmt.Sprintf("post in state %s already has an NGO routing", s))
	}
	return NgoAssigned, nil
}

// Accept transitions the state to NgoAccepted.
//
// Valid from: NgoAssigned. A Created post has no NGO to accept it; a post at
// NgoAccepted or later is already accepted.
func (s State) Accept() (State, error) {
	switch {
	case s == NgoAssigned:
		return NgoAccepted, nil
	case s == Created:
		return 0, errs.NewInvalidTransitionError("accept", "post has no assigned NGO")
	case s.IsAccepted():
		return 0, errs.NewInvalidTransitionError("accept", "post is already accepted by an NGO")
	default:
		return 0, errs.NewInvalidTransitionError("accept",
			fmt.Sprintf("post in state %s cannot be accepted", s))
	}
}

// Reject transitions the state back to Created, releasing the NGO routing.
//
// Valid from: NgoAssigned and NgoAccepted. Once a delivery partner is
// assigned the NGO can no longer back out.
func (s State) Reject() (State, error) {
	if s != NgoAssigned && s != NgoAccepted {
		return 0, errs.NewInvalidTransitionError("reject",
			fmt.Sprintf("post in state %s cannot be rejected", s))
	}
	return Created, nil
}

// AssignDelivery transitions the state to DeliveryAssigned.
//
// Valid from: NgoAccepted only; a post must be accepted by its NGO before a
// delivery partner can take it.
func (s State) AssignDelivery() (State, error) {
	if s != NgoAccepted {
		return 0, errs.NewInvalidTransitionError("assign-delivery",
			fmt.Sprintf("post in state %s is not yet accepted by an NGO", s))
	}
	return DeliveryAssigned, nil
}

// MarkInTransit transitions the state to InTransit.
//
// Valid from: DeliveryAssigned (delivery status pending).
func (s State) MarkInTransit() (State, error) {
	if s != DeliveryAssigned {
		return 0, errs.NewInvalidTransitionError("mark-in-transit",
			fmt.Sprintf("delivery status is %s, expected %s", s.DeliveryStatus(), DeliveryPending))
	}
	return InTransit, nil
}

// MarkDelivered transitions the state to Delivered, the terminal state.
//
// Valid from: InTransit only; the status moves strictly forward and may never
// skip in_transit or regress.
func (s State) MarkDelivered() (State, error) {
	if s != InTransit {
		return 0, errs.NewInvalidTransitionError("mark-delivered",
			fmt.Sprintf("delivery status is %s, expected %s", s.DeliveryStatus(), DeliveryInTransit))
	}
	return Delivered, nil
}

// DeliveryStatus derives the wire-visible delivery status from the state.
// Everything before pickup reports pending, matching the post's stored
// default before a delivery partner exists.
func (s State) DeliveryStatus() DeliveryStatus {
	switch s {
	case InTransit:
		return DeliveryInTransit
	case Delivered:
		return DeliveryDelivered
	default:
		return DeliveryPending
	}
}
