package repositories

import (
	"context"
	"time"

	"github.com/fintrack-labs/bank-ledger-service/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations over the transaction ledger.
type TransactionReader interface {
	// ListTransactionsByAccountID returns an account's transactions newest
	// first (transaction_time descending, ID descending as tie-breaker).
	ListTransactionsByAccountID(ctx context.Context, accountID int64) ([]domain.Transaction, error)

	// CountTransactionsSince counts transactions (flagged or not) for the
	// account with transaction_time >= since, within the supplied transaction.
	CountTransactionsSince(ctx context.Context, tx pgx.Tx, accountID int64, since time.Time) (int64, error)

	// CountUnflaggedTransactions counts the account's committed unflagged
	// transactions, within the supplied transaction.
	CountUnflaggedTransactions(ctx context.Context, tx pgx.Tx, accountID int64) (int64, error)
}

// TransactionWriter defines write operations over the transaction ledger.
type TransactionWriter interface {
	// AppendTransactionInTx inserts a transaction record and returns it with
	// the store-assigned ID. Insert-only; records are never updated.
	AppendTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines ledger read and write interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
