package post

import (
	"errors"
	"fmt"
	"time"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/pkg/errs"
)

var (
	// ErrPostIsNotConstructed is returned when a Post instance was not created
	// through NewPost or RestorePost. This ensures all posts are validated.
	ErrPostIsNotConstructed = errors.New("Post must be created via NewPost or RestorePost constructor")
)

// Post represents a donation offer in the system. It is the aggregate root
// that manages the post lifecycle from creation through NGO assignment and
// acceptance to delivery.
//
// Post maintains these invariants:
//   - Must have a valid unique identifier, title, author and owner
//   - The lifecycle state is a single tag; the NGO and delivery references
//     are only populated in states that permit them, so illegal combinations
//     (accepted without an NGO, in transit without a delivery partner) are
//     unrepresentable
//   - State transitions follow the rules defined on State
//   - Can only be created through NewPost or RestorePost
//
// The version counter supports optimistic concurrency in the store: every
// guarded write compares and bumps it, so two racing transitions cannot both
// win.
type Post struct {
	// id is the unique identifier for the post
	id kernel.UUID

	// title is the donor-supplied headline of the offer
	title string

	// caption is optional free-form detail about the food
	caption string

	// imageURL references the photo in the external blob store
	imageURL string

	// location is where the food can be picked up
	location kernel.GeoPoint

	// author is the donor's display name
	author string

	// ownerID is the donor's user ID
	ownerID kernel.UUID

	// assignedNgoID is the routed NGO (nil before routing and after a reject)
	assignedNgoID *kernel.UUID

	// assignedDeliveryID is the delivery partner (nil until assign-delivery)
	assignedDeliveryID *kernel.UUID

	// state is the current position in the lifecycle
	state State

	// createdAt is set once at creation
	createdAt time.Time

	// updatedAt is set on every mutating operation
	updatedAt time.Time

	// version is the optimistic-concurrency counter maintained by the store
	version int64

	// isConstructed ensures the post was created via a constructor
	isConstructed bool
}

// NewPost creates a new Post in state Created with validation. This is the
// only way to create a post from request input.
//
// Title, author and owner are required; caption and image are optional; the
// location must be a constructed GeoPoint (address-only is fine, the resolver
// degrades gracefully).
func NewPost(
	id kernel.UUID,
	title string,
	caption string,
	imageURL string,
	location kernel.GeoPoint,
	author string,
	ownerID kernel.UUID,
) (*Post, error) {
	now := time.Now().UTC()
	p := &Post{
		caption:       caption,
		imageURL:      imageURL,
		state:         Created,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTitle(title),
		p.setLocation(location),
		p.setAuthor(author),
		p.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePost reconstructs a Post from persistence. It re-validates the state
// tag and the consistency between the state and the NGO/delivery references,
// so corrupt rows surface as errors instead of illegal aggregates.
func RestorePost(
	id kernel.UUID,
	title string,
	caption string,
	imageURL string,
	location kernel.GeoPoint,
	author string,
	ownerID kernel.UUID,
	state State,
	assignedNgoID *kernel.UUID,
	assignedDeliveryID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
	version int64,
) (*Post, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}
	if err := validateReferences(state, assignedNgoID, assignedDeliveryID); err != nil {
		return nil, err
	}

	p := &Post{
		caption:            caption,
		imageURL:           imageURL,
		state:              state,
		assignedNgoID:      assignedNgoID,
		assignedDeliveryID: assignedDeliveryID,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		version:            version,
		isConstructed:      true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTitle(title),
		p.setLocation(location),
		p.setAuthor(author),
		p.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// validateReferences enforces the state/reference consistency rules:
// any state past Created carries an NGO, any state past NgoAccepted also
// carries a delivery partner, and Created carries neither.
func validateReferences(state State, ngoID, deliveryID *kernel.UUID) error {
	needsNgo := state != Created
	if needsNgo && ngoID == nil {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid",
			fmt.Errorf("%s requires an assigned NGO", state))
	}
	if !needsNgo && ngoID != nil {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid",
			fmt.Errorf("%s cannot have an assigned NGO", state))
	}

	needsDelivery := state == DeliveryAssigned || state == InTransit || state == Delivered
	if needsDelivery && deliveryID == nil {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid",
			fmt.Errorf("%s requires an assigned delivery partner", state))
	}
	if !needsDelivery && deliveryID != nil {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid",
			fmt.Errorf("%s cannot have an assigned delivery partner", state))
	}

	return nil
}

// Validate ensures the Post was constructed through NewPost or RestorePost.
func (p *Post) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPostIsNotConstructed
	}
	return nil
}

// IsEqual compares two posts by their unique identifiers.
func (p *Post) IsEqual(other *Post) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the post's unique identifier.
func (p *Post) ID() kernel.UUID {
	return p.id
}

// Title returns the donor-supplied headline.
func (p *Post) Title() string {
	return p.title
}

// Caption returns the optional description, possibly empty.
func (p *Post) Caption() string {
	return p.caption
}

// ImageURL returns the blob-store reference for the photo, possibly empty.
func (p *Post) ImageURL() string {
	return p.imageURL
}

// Location returns the pickup location.
func (p *Post) Location() kernel.GeoPoint {
	return p.location
}

// Author returns the donor's display name.
func (p *Post) Author() string {
	return p.author
}

// OwnerID returns the donor's user ID.
func (p *Post) OwnerID() kernel.UUID {
	return p.ownerID
}

// State returns the current lifecycle state.
func (p *Post) State() State {
	return p.state
}

// AssignedNgo returns the routed NGO's ID, or nil when unassigned.
func (p *Post) AssignedNgo() *kernel.UUID {
	return p.assignedNgoID
}

// AssignedDelivery returns the delivery partner's user ID, or nil.
func (p *Post) AssignedDelivery() *kernel.UUID {
	return p.assignedDeliveryID
}

// IsAcceptedByNgo reports whether the assigned NGO accepted the post.
// Derived from the state tag.
func (p *Post) IsAcceptedByNgo() bool {
	return p.state.IsAccepted()
}

// DeliveryStatus returns the wire-visible delivery status derived from the
// state tag: pending, in_transit, or delivered.
func (p *Post) DeliveryStatus() DeliveryStatus {
	return p.state.DeliveryStatus()
}

// CreatedAt returns the immutable creation timestamp.
func (p *Post) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (p *Post) UpdatedAt() time.Time {
	return p.updatedAt
}

// Version returns the optimistic-concurrency counter.
func (p *Post) Version() int64 {
	return p.version
}

// AssignNgo routes the post to an NGO and moves it to NgoAssigned.
// The caller (lifecycle service) is responsible for checking that the NGO
// exists; the aggregate only enforces the transition rules.
func (p *Post) AssignNgo(ngoID kernel.UUID) error {
	if err := ngoID.Validate(); err != nil {
		return err
	}

	newState, err := p.state.AssignNgo()
	if err != nil {
		return err
	}

	p.state = newState
	p.assignedNgoID = &ngoID
	p.touch()
	return nil
}

// Accept records the assigned NGO's acceptance, moving the post to
// NgoAccepted.
func (p *Post) Accept() error {
	newState, err := p.state.Accept()
	if err != nil {
		return err
	}

	p.state = newState
	p.touch()
	return nil
}

// Reject releases the NGO routing and returns the post to Created. The
// assignment sweep may subsequently route it to another NGO.
func (p *Post) Reject() error {
	newState, err := p.state.Reject()
	if err != nil {
		return err
	}

	p.state = newState
	p.assignedNgoID = nil
	p.touch()
	return nil
}

// AssignDelivery hands the accepted post to a delivery partner, moving it to
// DeliveryAssigned with delivery status pending.
func (p *Post) AssignDelivery(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	newState, err := p.state.AssignDelivery()
	if err != nil {
		return err
	}

	p.state = newState
	p.assignedDeliveryID = &deliveryID
	p.touch()
	return nil
}

// MarkInTransit records pickup by the delivery partner.
func (p *Post) MarkInTransit() error {
	newState, err := p.state.MarkInTransit()
	if err != nil {
		return err
	}

	p.state = newState
	p.touch()
	return nil
}

// MarkDelivered records completed delivery, the terminal state.
func (p *Post) MarkDelivered() error {
	newState, err := p.state.MarkDelivered()
	if err != nil {
		return err
	}

	p.state = newState
	p.touch()
	return nil
}

// AdvanceDeliveryStatus applies the forward transition matching target.
// Only the immediate successor of the current status is legal: no skipping
// pending straight to delivered, no regression, no re-setting the current
// status.
func (p *Post) AdvanceDeliveryStatus(target DeliveryStatus) error {
	switch target {
	case DeliveryInTransit:
		return p.MarkInTransit()
	case DeliveryDelivered:
		return p.MarkDelivered()
	case DeliveryPending:
		return errs.NewInvalidTransitionError("update-delivery-status",
			fmt.Sprintf("delivery status cannot move back to %s", DeliveryPending))
	default:
		return errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
			fmt.Errorf("%q is not a known delivery status", target))
	}
}

// touch refreshes updatedAt on every mutation.
func (p *Post) touch() {
	p.updatedAt = time.Now().UTC()
}

// setID validates and sets the post's unique identifier.
func (p *Post) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setTitle validates and sets the post's title. Title is required.
func (p *Post) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	p.title = title
	return nil
}

// setLocation validates and sets the pickup location.
func (p *Post) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	return nil
}

// setAuthor validates and sets the donor display name. Author is required.
func (p *Post) setAuthor(author string) error {
	if author == "" {
		return errs.NewValueIsRequiredError("author")
	}
	p.author = author
	return nil
}

// setOwnerID validates and sets the owning user's ID.
func (p *Post) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	p.ownerID = ownerID
	return nil
}
