package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager executes a unit of work as one all-or-nothing store
// transaction: fn's writes are committed together or not at all.
type TransactionManager interface {
	// WithTx begins a transaction, runs fn with the transaction handle, and
	// commits if fn returns nil, rolling back otherwise (including when ctx
	// is cancelled mid-flight).
	WithTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// LedgerRepository is the full store surface consumed by the transaction
// processor: accounts, the transaction ledger, and the atomic-unit boundary.
type LedgerRepository interface {
	AccountRepositoryFacade
	TransactionRepositoryFacade
	TransactionManager
}

// RepositoryProvider bundles the concrete repositories handed to the service
// container at startup.
type RepositoryProvider struct {
	LedgerRepo LedgerRepository
}
