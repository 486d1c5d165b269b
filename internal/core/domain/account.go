package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a customer bank account within the core domain.
// This is the primary representation used by services.
type Account struct {
	AccountID            int64           `json:"accountID"` // Primary Key, assigned by the store
	CustomerName         string          `json:"customerName"`
	AccountType          string          `json:"accountType"` // Free-form (e.g. SAVINGS, CHECKING)
	Balance              decimal.Decimal `json:"balance"`
	AvgTransactionAmount decimal.Decimal `json:"avgTransactionAmount"` // Mean of unflagged transaction amounts, 2dp
	CreatedAt            time.Time       `json:"createdAt"`            // Set once on creation, immutable
}
