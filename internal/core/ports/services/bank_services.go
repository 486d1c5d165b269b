package services

import (
	"context"

	"github.com/fintrack-labs/bank-ledger-service/internal/core/domain"
	"github.com/fintrack-labs/bank-ledger-service/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BankSvcFacade is the full banking surface exposed to the HTTP layer.
// Every mutating operation is one atomic unit: either the account mutation and
// its transaction record(s) are all committed, or nothing is.
type BankSvcFacade interface {
	// CreateAccount opens a new account. A positive initial deposit seeds the
	// running average and is recorded as the account's first transaction.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// Deposit credits amount to the account. The transaction is fraud-scored
	// before commit; a flagged deposit still moves money.
	Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.Account, error)

	// Withdraw debits amount from the account. Fails with an
	// InsufficientFundsError before any state is touched when the balance is
	// too low; a rejected withdrawal leaves no transaction record.
	Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.Account, error)

	// Transfer moves amount between two accounts as an atomic pair of legs.
	// Each leg is independently fraud-scored; failure of either leg rolls
	// back both.
	Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal) error

	// GetAccount returns the current account state.
	GetAccount(ctx context.Context, accountID int64) (*domain.Account, error)

	// GetTransactionHistory returns the account's transactions newest first.
	GetTransactionHistory(ctx context.Context, accountID int64) ([]domain.Transaction, error)
}

// FraudCheckSvc classifies one candidate transaction against its account's
// recent history. Classification is deterministic and side-effect free apart
// from the bounded history reads it performs; the error return is only ever a
// store failure, never an inconclusive classification.
type FraudCheckSvc interface {
	Evaluate(ctx context.Context, tx pgx.Tx, account domain.Account, candidate domain.Transaction) (flagged bool, reason string, err error)
}

// ServiceContainer holds instances of all the application services.
// This is the entry point for accessing service functionality from handlers.
type ServiceContainer struct {
	Bank BankSvcFacade
}
