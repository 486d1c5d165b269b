package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack-labs/bank-ledger-service/internal/apperrors"
	"github.com/fintrack-labs/bank-ledger-service/internal/core/domain"
	"github.com/fintrack-labs/bank-ledger-service/internal/models"
	"github.com/fintrack-labs/bank-ledger-service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `account_id, customer_name, account_type, balance, avg_transaction_amount, created_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var modelAcc models.Account
	err := row.Scan(
		&modelAcc.AccountID,
		&modelAcc.CustomerName,
		&modelAcc.AccountType,
		&modelAcc.Balance,
		&modelAcc.AvgTransactionAmount,
		&modelAcc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}

// SaveAccount inserts a new account inside the given transaction and returns
// it with the generated account ID.
func (r *PgxLedgerRepository) SaveAccount(ctx context.Context, tx pgx.Tx, account domain.Account) (*domain.Account, error) {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (customer_name, account_type, balance, avg_transaction_amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + accountColumns + `;
	`
	saved, err := scanAccount(tx.QueryRow(ctx, query,
		modelAcc.CustomerName,
		modelAcc.AccountType,
		modelAcc.Balance,
		modelAcc.AvgTransactionAmount,
		modelAcc.CreatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save account for customer %q: %w", account.CustomerName, err)
	}
	return saved, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxLedgerRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1;
	`
	account, err := scanAccount(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %d: %w", accountID, err)
	}
	return account, nil
}

// FindAccountForUpdate retrieves an account by its ID inside the given
// transaction, taking a row lock that serializes concurrent operations on
// the same account until the transaction ends.
func (r *PgxLedgerRepository) FindAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID int64) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1
		FOR UPDATE;
	`
	account, err := scanAccount(tx.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock account %d for update: %w", accountID, err)
	}
	return account, nil
}

// UpdateAccountInTx persists the account's balance and running average inside
// the given transaction. The caller must hold the row lock.
func (r *PgxLedgerRepository) UpdateAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	query := `
		UPDATE accounts
		SET balance = $2, avg_transaction_amount = $3
		WHERE account_id = $1;
	`
	tag, err := tx.Exec(ctx, query, account.AccountID, account.Balance, account.AvgTransactionAmount)
	if err != nil {
		return fmt.Errorf("failed to update account %d: %w", account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
