package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is a deposit or a withdrawal.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
)

// Transaction represents a row in the transactions table. Rows are insert-only.
type Transaction struct {
	TransactionID   int64           `db:"transaction_id"`
	AccountID       int64           `db:"account_id"`
	TransactionType TransactionType `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"`
	IsFlagged       bool            `db:"is_flagged"`
	ReasonForFlag   *string         `db:"reason_for_flag"` // Nullable, present iff flagged
	TransactionTime time.Time       `db:"transaction_time"`
}
