// Package ngo contains the NGO entity: an organization that can accept
// donation posts for onward delivery. NGOs are created through registration,
// read by the assignment resolver, and never deleted by the engine.
package ngo

import (
	"errors"
	"strings"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/pkg/errs"
)

var (
	// ErrNgoIsNotConstructed is returned when using an NGO that was not
	// created via NewNGO or RestoreNGO.
	ErrNgoIsNotConstructed = errors.New("NGO must be created via NewNGO or RestoreNGO constructor")
)

// NGO represents a registered organization in the directory.
//
// Business rules:
//   - Must have a valid UUID, a non-empty name and a plausible contact email
//   - The credential is opaque to the engine; it is stored and compared by
//     the identity collaborator, never inspected here
//   - verified starts false and is flipped by an out-of-band process
type NGO struct {
	// id uniquely identifies the NGO
	id kernel.UUID
	// name is the organization's display name
	name string
	// email is the contact address used for notifications
	email string
	// credential is the opaque registration secret (already hashed upstream)
	credential string
	// location is where the NGO operates, used for nearest-first routing
	location kernel.GeoPoint
	// verified marks NGOs vetted by the platform operators
	verified bool

	isConstructed bool
}

// NewNGO creates a new NGO with validation. Registration always starts
// unverified.
func NewNGO(id kernel.UUID, name, email, credential string, location kernel.GeoPoint) (*NGO, error) {
	n := &NGO{
		credential:    credential,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setName(name),
		n.setEmail(email),
		n.setLocation(location),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNGO reconstructs an NGO from persistence, including its verification
// flag.
func RestoreNGO(id kernel.UUID, name, email, credential string, location kernel.GeoPoint, verified bool) (*NGO, error) {
	n, err := NewNGO(id, name, email, credential, location)
	if err != nil {
		return nil, err
	}

	n.verified = verified
	return n, nil
}

// Validate ensures the NGO was constructed through NewNGO or RestoreNGO.
func (n *NGO) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNgoIsNotConstructed
	}
	return nil
}

// IsEqual compares two NGOs by their unique identifiers.
func (n *NGO) IsEqual(other *NGO) bool {
	return other != nil && n.id.IsEqual(other.id)
}

// ID returns the NGO's unique identifier.
func (n *NGO) ID() kernel.UUID {
	return n.id
}

// Name returns the organization's display name.
func (n *NGO) Name() string {
	return n.name
}

// Email returns the contact address.
func (n *NGO) Email() string {
	return n.email
}

// Credential returns the opaque registration secret.
func (n *NGO) Credential() string {
	return n.credential
}

// Location returns where the NGO operates.
func (n *NGO) Location() kernel.GeoPoint {
	return n.location
}

// Verified reports whether the platform has vetted this NGO.
func (n *NGO) Verified() bool {
	return n.verified
}

// MarkVerified flips the verification flag. Idempotent.
func (n *NGO) MarkVerified() {
	n.verified = true
}

func (n *NGO) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *NGO) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	n.name = name
	return nil
}

func (n *NGO) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	n.email = email
	return nil
}

func (n *NGO) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	n.location = location
	return nil
}
