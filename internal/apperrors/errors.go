package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInsufficientFunds indicates a withdrawal or transfer leg would drive the balance negative.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrStoreFailure indicates the underlying store was unavailable or an atomic unit could not commit.
// Callers should treat it as retryable, never as success.
var ErrStoreFailure = errors.New("store failure")

// InsufficientFundsError carries the balance observed when the operation was rejected,
// so callers can surface it to the user.
type InsufficientFundsError struct {
	Balance decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for withdrawal, current balance: %s", e.Balance.StringFixed(2))
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// NewInsufficientFundsError returns an error matching ErrInsufficientFunds via errors.Is.
func NewInsufficientFundsError(balance decimal.Decimal) error {
	return &InsufficientFundsError{Balance: balance}
}

// AppError wraps lower-level failures with an HTTP-ish status code and a message.
// Repositories use it to annotate store errors without losing the cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is maps 5xx AppErrors onto ErrStoreFailure and 404s onto ErrNotFound so
// callers can match with errors.Is without knowing about AppError.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrStoreFailure:
		return e.Code >= 500
	case ErrNotFound:
		return e.Code == 404
	}
	return false
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
