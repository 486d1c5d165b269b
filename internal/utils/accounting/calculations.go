package accounting

import (
	"github.com/fintrack-labs/bank-ledger-service/internal/apperrors"
	"github.com/fintrack-labs/bank-ledger-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyDelta returns the account with the signed amount applied to its balance.
// A withdrawal-class delta that would drive the balance negative fails with an
// InsufficientFundsError carrying the current balance; deposit-class deltas
// cannot fail. The input account is not mutated.
func ApplyDelta(account domain.Account, signedAmount decimal.Decimal) (domain.Account, error) {
	newBalance := account.Balance.Add(signedAmount)
	if newBalance.IsNegative() {
		return account, apperrors.NewInsufficientFundsError(account.Balance)
	}
	account.Balance = newBalance
	return account, nil
}

// RecomputeAverage folds a new unflagged transaction amount into the running
// average: round2((average*unflaggedCount + newAmount) / (unflaggedCount + 1)),
// rounded half-up to 2 decimal places. unflaggedCount is the number of prior
// unflagged transactions; flagged transactions never enter the mean.
func RecomputeAverage(average decimal.Decimal, newAmount decimal.Decimal, unflaggedCount int64) decimal.Decimal {
	count := decimal.NewFromInt(unflaggedCount)
	total := average.Mul(count).Add(newAmount)
	// decimal.Round rounds half away from zero, which is half-up for the
	// non-negative amounts handled here.
	return total.Div(count.Add(decimal.NewFromInt(1))).Round(2)
}

// SeedAverage returns the initial running average for a newly opened account:
// the opening balance when positive, zero otherwise.
func SeedAverage(initialDeposit decimal.Decimal) decimal.Decimal {
	if initialDeposit.IsPositive() {
		return initialDeposit
	}
	return decimal.Zero
}
