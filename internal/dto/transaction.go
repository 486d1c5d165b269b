package dto

import (
	"time"

	"github.com/fintrack-labs/bank-ledger-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountRequest is the body for deposit and withdrawal requests.
// The posdecimal validation rejects zero and negative amounts before the
// service layer is reached.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,posdecimal"`
}

// TransferRequest is the body for transfer requests.
type TransferRequest struct {
	FromAccountID int64           `json:"fromAccountID" binding:"required"`
	ToAccountID   int64           `json:"toAccountID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required,posdecimal"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID   int64           `json:"transactionID"`
	AccountID       int64           `json:"accountID"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Flagged         bool            `json:"flagged"`
	ReasonForFlag   *string         `json:"reasonForFlag,omitempty"`
	TransactionTime time.Time       `json:"transactionTime"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		AccountID:       txn.AccountID,
		TransactionType: string(txn.TransactionType),
		Amount:          txn.Amount,
		Flagged:         txn.Flagged,
		ReasonForFlag:   txn.ReasonForFlag,
		TransactionTime: txn.TransactionTime,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(txn)
	}
	return res
}
