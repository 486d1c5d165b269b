package repositories

import (
	"context"

	"github.com/fintrack-labs/bank-ledger-service/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// FindAccountForUpdate retrieves an account and locks its row for the
	// duration of the supplied transaction. Must be called within a transaction.
	FindAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID int64) (*domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount inserts a new account and returns it with the store-assigned ID.
	SaveAccount(ctx context.Context, tx pgx.Tx, account domain.Account) (*domain.Account, error)

	// UpdateAccountInTx persists the balance and running average of an
	// existing account within the supplied transaction.
	UpdateAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
