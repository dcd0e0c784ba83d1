package commands

import (
	"errors"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/pkg/errs"
	"sharebite/internal/pkg/guard"
)

var (
	ErrCreatePostCommandIsNotConstructed = errors.New(
		"CreatePostCommand must be created via NewCreatePostCommand constructor",
	)
)

// CreatePostCommand represents a donor's request to offer surplus food.
// Encapsulates the descriptive fields of the new post; routing to an NGO
// happens inside the handler, not here.
//
// Example:
//
//	postID := kernel.NewUUID()
//	location, _ := kernel.NewGeoPoint(12.97, 77.59, "Bangalore")
//	cmd, err := NewCreatePostCommand(postID, "Leftover rice", "5kg", imageURL, location, "Asha", donorID)
//	if err != nil {
//	    return fmt.Errorf("invalid post data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreatePostCommand struct { //nolint:recvcheck //using for validation
	postID   kernel.UUID
	title    string
	caption  string
	imageURL string
	location kernel.GeoPoint
	author   string
	ownerID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreatePostCommand creates a command to publish a new donation post.
// Title, author, owner and a constructed location are required; caption and
// image are optional.
func NewCreatePostCommand(
	postID kernel.UUID,
	title string,
	caption string,
	imageURL string,
	location kernel.GeoPoint,
	author string,
	ownerID kernel.UUID,
) (CreatePostCommand, error) {
	cmd := CreatePostCommand{
		caption:  caption,
		imageURL: imageURL,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPostID(postID),
		cmd.setTitle(title),
		cmd.setLocation(location),
		cmd.setAuthor(author),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return CreatePostCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePostCommand) Validate() error {
	return c.guard.Validate(ErrCreatePostCommandIsNotConstructed)
}

// PostID returns the identifier for the new post.
func (c CreatePostCommand) PostID() kernel.UUID {
	return c.postID
}

// Title returns the donor-supplied headline.
func (c CreatePostCommand) Title() string {
	return c.title
}

// Caption returns the optional description.
func (c CreatePostCommand) Caption() string {
	return c.caption
}

// ImageURL returns the optional blob-store reference.
func (c CreatePostCommand) ImageURL() string {
	return c.imageURL
}

// Location returns the pickup location.
func (c CreatePostCommand) Location() kernel.GeoPoint {
	return c.location
}

// Author returns the donor's display name.
func (c CreatePostCommand) Author() string {
	return c.author
}

// OwnerID returns the donor's user ID.
func (c CreatePostCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *CreatePostCommand) setPostID(postID kernel.UUID) error {
	if err := postID.Validate(); err != nil {
		return err
	}
	c.postID = postID
	return nil
}

func (c *CreatePostCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *CreatePostCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

func (c *CreatePostCommand) setAuthor(author string) error {
	if author == "" {
		return errs.NewValueIsRequiredError("author")
	}
	c.author = author
	return nil
}

func (c *CreatePostCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	c.ownerID = ownerID
	return nil
}
