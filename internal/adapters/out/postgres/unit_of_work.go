// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work spans one business transaction: Begin opens
// the transaction, the bound repositories execute inside it, Commit or
// Rollback closes it. Each instance maintains its own transaction state, so
// concurrent operations must use separate instances.
//
// Modified aggregates are tracked during the transaction, which keeps the
// door open for an outbox or domain-event dispatch after commit.
package postgres

import (
	"context"

	"sharebite/internal/adapters/out/postgres/ngorepo"
	"sharebite/internal/adapters/out/postgres/postrepo"
	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. Each Create call yields a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the post and
// NGO repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a new database transaction. Calling Begin again on an
// instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Rolling back after a commit returns gorm.ErrInvalidTransaction, which
// deferred cleanup ignores.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// PostRepository returns a post repository bound to the current transaction,
// or to the main connection when no transaction is open.
func (uow *GormUnitOfWork) PostRepository() ports.PostRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return postrepo.NewGormPostRepository(db, uow)
}

// NgoRepository returns an NGO repository bound to the current transaction,
// or to the main connection when no transaction is open.
func (uow *GormUnitOfWork) NgoRepository() ports.NgoRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return ngorepo.NewGormNgoRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by the repositories on every add and update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
