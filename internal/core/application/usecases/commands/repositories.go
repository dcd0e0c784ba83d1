// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence, then fire-and-forget notification.
package commands

import (
	"context"

	"sharebite/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PostRepoFactory provides access to the post repository within a
	// transaction.
	PostRepoFactory interface {
		PostRepository() ports.PostRepository
	}

	// NgoRepoFactory provides access to the NGO directory within a
	// transaction.
	NgoRepoFactory interface {
		NgoRepository() ports.NgoRepository
	}

	// PostUoW manages transactions for post-only operations.
	PostUoW interface {
		TxManager
		PostRepoFactory
	}

	// PostUoWFactory creates new post unit of work instances.
	PostUoWFactory interface {
		Create() PostUoW
	}

	// NgoUoW manages transactions for directory-only operations.
	NgoUoW interface {
		TxManager
		NgoRepoFactory
	}

	// NgoUoWFactory creates new directory unit of work instances.
	NgoUoWFactory interface {
		Create() NgoUoW
	}

	// UoW manages transactions that read the NGO directory while writing
	// posts, such as creation-time routing and the re-assignment sweep.
	UoW interface {
		TxManager
		PostRepoFactory
		NgoRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
