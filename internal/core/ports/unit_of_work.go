package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command, ensuring
// isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Client code manages
// the transaction lifecycle explicitly: Begin, do work through the bound
// repositories, then Commit or Rollback.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Safe to defer after a
	// commit; rolling back a committed transaction is a no-op error that
	// callers ignore.
	Rollback(ctx context.Context) error

	// PostRepository returns a PostRepository bound to the current
	// transaction.
	PostRepository() PostRepository

	// NgoRepository returns an NgoRepository bound to the current
	// transaction.
	NgoRepository() NgoRepository
}
