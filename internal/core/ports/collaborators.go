package ports

import (
	"context"
	"time"

	"sharebite/internal/core/domain/model/kernel"
)

// BlobStore is the external image store the engine references but never
// manages. Posts hold the URL returned by Put; the bytes themselves live
// outside the engine's ownership.
type BlobStore interface {
	// Put stores the bytes under name and returns a stable URL for them.
	Put(ctx context.Context, name string, data []byte) (string, error)

	// Get retrieves previously stored bytes by name.
	Get(ctx context.Context, name string) ([]byte, error)
}

// Role is the coarse authorization role attached to an authenticated user.
type Role string

const (
	// RoleDonor can create and delete their own posts.
	RoleDonor Role = "donor"
	// RoleNgo can accept and reject posts routed to their NGO.
	RoleNgo Role = "ngo"
	// RoleDelivery can update delivery status on posts assigned to them.
	RoleDelivery Role = "delivery"
)

// Identity is the authenticated caller as reported by the session provider.
type Identity struct {
	UserID kernel.UUID
	Role   Role
}

// IdentityProvider resolves the authenticated identity for a request.
// Authorization is enforced at the transport boundary, not inside the
// lifecycle commands (the commands trust their inputs).
type IdentityProvider interface {
	Identity(ctx context.Context) (Identity, error)
}

// LifecycleEvent describes a completed post lifecycle transition for
// downstream consumers (mail, analytics).
type LifecycleEvent struct {
	PostID     string    `json:"postId"`
	Transition string    `json:"transition"`
	State      string    `json:"state"`
	NgoID      string    `json:"ngoId,omitempty"`
	DeliveryID string    `json:"deliveryId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Notifier is the fire-and-forget notification sink. Implementations must be
// safe to call after a commit; a notification failure never rolls back the
// transition it describes, callers only log it.
type Notifier interface {
	Notify(ctx context.Context, event LifecycleEvent) error
}
