package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account row in the accounts table.
type Account struct {
	AccountID            int64           `db:"account_id"`
	CustomerName         string          `db:"customer_name"`
	AccountType          string          `db:"account_type"`
	Balance              decimal.Decimal `db:"balance"`
	AvgTransactionAmount decimal.Decimal `db:"avg_transaction_amount"`
	CreatedAt            time.Time       `db:"created_at"`
}
