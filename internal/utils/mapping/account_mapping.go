package mapping

import (
	"github.com/fintrack-labs/bank-ledger-service/internal/core/domain"
	"github.com/fintrack-labs/bank-ledger-service/internal/models"
)

// ToModelAccount converts a domain.Account to its DB representation.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:            d.AccountID,
		CustomerName:         d.CustomerName,
		AccountType:          d.AccountType,
		Balance:              d.Balance,
		AvgTransactionAmount: d.AvgTransactionAmount,
		CreatedAt:            d.CreatedAt,
	}
}

// ToDomainAccount converts a DB account row to the domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:            m.AccountID,
		CustomerName:         m.CustomerName,
		AccountType:          m.AccountType,
		Balance:              m.Balance,
		AvgTransactionAmount: m.AvgTransactionAmount,
		CreatedAt:            m.CreatedAt,
	}
}
