package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fintrack-labs/bank-ledger-service/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsufficientFundsError(t *testing.T) {
	err := apperrors.NewInsufficientFundsError(decimal.RequireFromString("42.5"))

	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.Contains(t, err.Error(), "42.50")

	var ifErr *apperrors.InsufficientFundsError
	require.ErrorAs(t, err, &ifErr)
	assert.True(t, ifErr.Balance.Equal(decimal.RequireFromString("42.50")))
}

func TestAppErrorMatching(t *testing.T) {
	cause := errors.New("connection refused")

	storeErr := apperrors.NewAppError(500, "failed to begin transaction", cause)
	assert.ErrorIs(t, storeErr, apperrors.ErrStoreFailure)
	assert.ErrorIs(t, storeErr, cause)
	assert.NotErrorIs(t, storeErr, apperrors.ErrNotFound)
	assert.Contains(t, storeErr.Error(), "failed to begin transaction")

	notFound := apperrors.NewAppError(404, "account missing", nil)
	assert.ErrorIs(t, notFound, apperrors.ErrNotFound)
	assert.NotErrorIs(t, notFound, apperrors.ErrStoreFailure)
}

func TestAppErrorMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("save account: %w", apperrors.NewAppError(500, "commit failed", errors.New("broken pipe")))

	assert.ErrorIs(t, err, apperrors.ErrStoreFailure)
}
