package dto_test

import (
	"testing"

	"github.com/fintrack-labs/bank-ledger-service/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositiveDecimalValidation(t *testing.T) {
	v := validator.New()
	require.NoError(t, dto.RegisterValidations(v))

	testCases := []struct {
		name   string
		amount string
		valid  bool
	}{
		{name: "whole amount", amount: "100", valid: true},
		{name: "two decimal places", amount: "0.01", valid: true},
		{name: "zero", amount: "0", valid: false},
		{name: "negative", amount: "-5.00", valid: false},
		{name: "sub-cent precision", amount: "0.001", valid: false},
		{name: "three decimal places above a cent", amount: "10.505", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Var(decimal.RequireFromString(tc.amount), "posdecimal")
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
