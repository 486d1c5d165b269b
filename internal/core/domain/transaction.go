package domain

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

// Transaction represents a single ledger entry against one account.
// Transactions are immutable once created; corrections are new transactions.
type Transaction struct {
	TransactionID   int64           `json:"transactionID"` // Primary Key, assigned by the store
	AccountID       int64           `json:"accountID"`     // FK -> Account.AccountID (Not Null)
	TransactionType TransactionType `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`  // Positive magnitude; the type determines the sign
	Flagged         bool            `json:"flagged"` // Set by the fraud engine before commit
	ReasonForFlag   *string         `json:"reasonForFlag,omitempty"`
	TransactionTime time.Time       `json:"transactionTime"` // Orders the per-account history
}

// SignedAmount returns the balance effect of the transaction:
// positive for deposits, negative for withdrawals.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.TransactionType == Withdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}
