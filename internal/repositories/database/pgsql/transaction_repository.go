package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/fintrack-labs/bank-ledger-service/internal/core/domain"
	"github.com/fintrack-labs/bank-ledger-service/internal/models"
	"github.com/fintrack-labs/bank-ledger-service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `transaction_id, account_id, transaction_type, amount, is_flagged, reason_for_flag, transaction_time`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var modelTxn models.Transaction
	err := row.Scan(
		&modelTxn.TransactionID,
		&modelTxn.AccountID,
		&modelTxn.TransactionType,
		&modelTxn.Amount,
		&modelTxn.IsFlagged,
		&modelTxn.ReasonForFlag,
		&modelTxn.TransactionTime,
	)
	if err != nil {
		return nil, err
	}
	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// AppendTransactionInTx inserts a transaction record inside the given
// transaction and returns it with the generated transaction ID. Records are
// insert-only; nothing in the service ever updates or deletes them.
func (r *PgxLedgerRepository) AppendTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (*domain.Transaction, error) {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (account_id, transaction_type, amount, is_flagged, reason_for_flag, transaction_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + transactionColumns + `;
	`
	saved, err := scanTransaction(tx.QueryRow(ctx, query,
		modelTxn.AccountID,
		modelTxn.TransactionType,
		modelTxn.Amount,
		modelTxn.IsFlagged,
		modelTxn.ReasonForFlag,
		modelTxn.TransactionTime,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to append transaction for account %d: %w", txn.AccountID, err)
	}
	return saved, nil
}

// ListTransactionsByAccountID returns the account's transactions newest first.
func (r *PgxLedgerRepository) ListTransactionsByAccountID(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
		ORDER BY transaction_time DESC, transaction_id DESC;
	`
	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %d: %w", accountID, err)
	}
	defer rows.Close()

	var modelTxns []models.Transaction
	for rows.Next() {
		var modelTxn models.Transaction
		err := rows.Scan(
			&modelTxn.TransactionID,
			&modelTxn.AccountID,
			&modelTxn.TransactionType,
			&modelTxn.Amount,
			&modelTxn.IsFlagged,
			&modelTxn.ReasonForFlag,
			&modelTxn.TransactionTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for account %d: %w", accountID, err)
		}
		modelTxns = append(modelTxns, modelTxn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows for account %d: %w", accountID, err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// CountTransactionsSince counts all of the account's transactions recorded at
// or after the given instant, flagged ones included. Runs inside the caller's
// transaction so the count is consistent with the held row lock.
func (r *PgxLedgerRepository) CountTransactionsSince(ctx context.Context, tx pgx.Tx, accountID int64, since time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM transactions
		WHERE account_id = $1 AND transaction_time >= $2;
	`
	var count int64
	if err := tx.QueryRow(ctx, query, accountID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count recent transactions for account %d: %w", accountID, err)
	}
	return count, nil
}

// CountUnflaggedTransactions counts the account's committed transactions that
// are not flagged, which is the divisor basis for the running average.
func (r *PgxLedgerRepository) CountUnflaggedTransactions(ctx context.Context, tx pgx.Tx, accountID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM transactions
		WHERE account_id = $1 AND is_flagged = FALSE;
	`
	var count int64
	if err := tx.QueryRow(ctx, query, accountID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unflagged transactions for account %d: %w", accountID, err)
	}
	return count, nil
}
