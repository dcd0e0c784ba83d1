package commands

import (
	"errors"

	"sharebite/internal/pkg/guard"
)

var (
	ErrAssignPendingPostsCommandIsNotConstructed = errors.New(
		"AssignPendingPostsCommand must be created via NewAssignPendingPostsCommand constructor",
	)
)

// AssignPendingPostsCommand sweeps posts that are still unassigned and
// routes each one to an NGO. Issued periodically by the job scheduler;
// carries no parameters.
type AssignPendingPostsCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignPendingPostsCommand creates a sweep command.
func NewAssignPendingPostsCommand() (AssignPendingPostsCommand, error) {
	return AssignPendingPostsCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPendingPostsCommand) Validate() error {
	return c.guard.Validate(ErrAssignPendingPostsCommandIsNotConstructed)
}
