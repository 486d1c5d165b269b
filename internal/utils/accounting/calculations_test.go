package accounting_test

import (
	"testing"

	"github.com/fintrack-labs/bank-ledger-service/internal/apperrors"
	"github.com/fintrack-labs/bank-ledger-service/internal/core/domain"
	"github.com/fintrack-labs/bank-ledger-service/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func account(balance string) domain.Account {
	return domain.Account{
		AccountID: 1,
		Balance:   decimal.RequireFromString(balance),
	}
}

func TestApplyDelta_Credit(t *testing.T) {
	updated, err := accounting.ApplyDelta(account("100.00"), decimal.RequireFromString("25.50"))
	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(decimal.RequireFromString("125.50")))
}

func TestApplyDelta_DebitToZero(t *testing.T) {
	updated, err := accounting.ApplyDelta(account("100.00"), decimal.RequireFromString("-100.00"))
	require.NoError(t, err)
	assert.True(t, updated.Balance.IsZero())
}

func TestApplyDelta_InsufficientFunds(t *testing.T) {
	original := account("99.99")
	_, err := accounting.ApplyDelta(original, decimal.RequireFromString("-100.00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)

	var ifErr *apperrors.InsufficientFundsError
	require.ErrorAs(t, err, &ifErr)
	assert.True(t, ifErr.Balance.Equal(original.Balance))
	assert.Contains(t, err.Error(), "99.99")
}

func TestApplyDelta_DoesNotMutateInput(t *testing.T) {
	original := account("50.00")
	_, err := accounting.ApplyDelta(original, decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	assert.True(t, original.Balance.Equal(decimal.RequireFromString("50.00")))
}

func TestRecomputeAverage(t *testing.T) {
	testCases := []struct {
		name           string
		average        string
		newAmount      string
		unflaggedCount int64
		expected       string
	}{
		{
			name:           "opening balance then first deposit",
			average:        "1000.00",
			newAmount:      "200.00",
			unflaggedCount: 1,
			expected:       "600.00",
		},
		{
			name:           "third transaction",
			average:        "600.00",
			newAmount:      "300.00",
			unflaggedCount: 2,
			expected:       "500.00",
		},
		{
			name:           "first transaction with no history",
			average:        "0",
			newAmount:      "42.37",
			unflaggedCount: 0,
			expected:       "42.37",
		},
		{
			name:           "half cent rounds up",
			average:        "10.00",
			newAmount:      "10.01",
			unflaggedCount: 1,
			expected:       "10.01", // 10.005 rounds up
		},
		{
			name:           "sub-half cent rounds down",
			average:        "10.00",
			newAmount:      "10.01",
			unflaggedCount: 3,
			expected:       "10.00", // 10.0025 rounds down
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := accounting.RecomputeAverage(
				decimal.RequireFromString(tc.average),
				decimal.RequireFromString(tc.newAmount),
				tc.unflaggedCount,
			)
			assert.Equal(t, tc.expected, got.StringFixed(2))
		})
	}
}

func TestSeedAverage(t *testing.T) {
	assert.True(t, accounting.SeedAverage(decimal.RequireFromString("500.00")).Equal(decimal.RequireFromString("500.00")))
	assert.True(t, accounting.SeedAverage(decimal.Zero).IsZero())
	assert.True(t, accounting.SeedAverage(decimal.RequireFromString("-10.00")).IsZero())
}
