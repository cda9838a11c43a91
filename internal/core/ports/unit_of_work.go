package ports

import "context"

// UnitOfWork tracks aggregates loaded in a business transaction and persists
// their changes atomically on Commit.
type UnitOfWork interface {
	// Begin starts a transaction. Repeated calls on the same instance are
	// safe and do not open nested transactions.
	Begin(ctx context.Context) error

	// Commit finishes the transaction and saves tracked changes.
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction.
	// Should be called deferred after Begin.
	Rollback(ctx context.Context) error

	// ParcelRepository returns the parcel repository bound to this unit of work.
	ParcelRepository() ParcelRepository

	// UserRepository returns the user repository bound to this unit of work.
	UserRepository() UserRepository
}

// UnitOfWorkFactory creates fresh UnitOfWork instances, one per business
// transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
