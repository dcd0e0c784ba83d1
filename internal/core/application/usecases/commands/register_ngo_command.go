package commands

import (
	"errors"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/pkg/errs"
	"sharebite/internal/pkg/guard"
)

var (
	ErrRegisterNgoCommandIsNotConstructed = errors.New(
		"RegisterNgoCommand must be created via NewRegisterNgoCommand constructor",
	)
)

// RegisterNgoCommand enrolls an NGO into the directory.
type RegisterNgoCommand struct { //nolint:recvcheck //using for validation
	ngoID      kernel.UUID
	name       string
	email      string
	credential string
	location   kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRegisterNgoCommand creates a command to register an NGO with the given
// profile. The location may be address-only; such an NGO still receives
// assignments through the fallback ordering.
func NewRegisterNgoCommand(
	ngoID kernel.UUID,
	name string,
	email string,
	credential string,
	location kernel.GeoPoint,
) (RegisterNgoCommand, error) {
	cmd := RegisterNgoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNgoID(ngoID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setCredential(credential),
		cmd.setLocation(location),
	); err != nil {
		return RegisterNgoCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterNgoCommand) Validate() error {
	return c.guard.Validate(ErrRegisterNgoCommandIsNotConstructed)
}

// NgoID returns the identifier for the new directory entry.
func (c RegisterNgoCommand) NgoID() kernel.UUID {
	return c.ngoID
}

// Name returns the NGO's display name.
func (c RegisterNgoCommand) Name() string {
	return c.name
}

// Email returns the NGO's contact email.
func (c RegisterNgoCommand) Email() string {
	return c.email
}

// Credential returns the NGO's opaque login credential.
func (c RegisterNgoCommand) Credential() string {
	return c.credential
}

// Location returns the NGO's base location.
func (c RegisterNgoCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *RegisterNgoCommand) setNgoID(ngoID kernel.UUID) error {
	if err := ngoID.Validate(); err != nil {
		return err
	}
	c.ngoID = ngoID
	return nil
}

func (c *RegisterNgoCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterNgoCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterNgoCommand) setCredential(credential string) error {
	if credential == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.credential = credential
	return nil
}

func (c *RegisterNgoCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
