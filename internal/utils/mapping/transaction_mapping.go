package mapping

import (
	"github.com/fintrack-labs/bank-ledger-service/internal/core/domain"
	"github.com/fintrack-labs/bank-ledger-service/internal/models"
)

// ToModelTransaction converts a domain.Transaction to its DB representation.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		AccountID:       d.AccountID,
		TransactionType: models.TransactionType(d.TransactionType),
		Amount:          d.Amount,
		IsFlagged:       d.Flagged,
		ReasonForFlag:   d.ReasonForFlag,
		TransactionTime: d.TransactionTime,
	}
}

// ToDomainTransaction converts a DB transaction row to the domain representation.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		AccountID:       m.AccountID,
		TransactionType: domain.TransactionType(m.TransactionType),
		Amount:          m.Amount,
		Flagged:         m.IsFlagged,
		ReasonForFlag:   m.ReasonForFlag,
		TransactionTime: m.TransactionTime,
	}
}

// ToDomainTransactionSlice converts a slice of DB rows to domain transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
