package dto

import (
	"time"

	"github.com/fintrack-labs/bank-ledger-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a new account.
// InitialDeposit may be zero; negative opening balances are rejected.
type CreateAccountRequest struct {
	CustomerName   string          `json:"customerName" binding:"required"`
	AccountType    string          `json:"accountType" binding:"required"`
	InitialDeposit decimal.Decimal `json:"initialDeposit"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID            int64           `json:"accountID"`
	CustomerName         string          `json:"customerName"`
	AccountType          string          `json:"accountType"`
	Balance              decimal.Decimal `json:"balance"`
	AvgTransactionAmount decimal.Decimal `json:"avgTransactionAmount"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:            acc.AccountID,
		CustomerName:         acc.CustomerName,
		AccountType:          acc.AccountType,
		Balance:              acc.Balance,
		AvgTransactionAmount: acc.AvgTransactionAmount,
		CreatedAt:            acc.CreatedAt,
	}
}
