package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrack-labs/bank-ledger-service/internal/core/domain"
	portsrepo "github.com/fintrack-labs/bank-ledger-service/internal/core/ports/repositories"
	portssvc "github.com/fintrack-labs/bank-ledger-service/internal/core/ports/services"
	"github.com/fintrack-labs/bank-ledger-service/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Fraud rule configuration.
const (
	// frequencyTransactionLimit is the number of committed transactions in the
	// window at which the next transaction is flagged.
	frequencyTransactionLimit = 10
	// frequencyWindow is how far back the frequency rule looks.
	frequencyWindow = 5 * time.Minute
)

// amountMultiplierLimit is the multiple of the running average above which a
// transaction amount is considered anomalous.
var amountMultiplierLimit = decimal.NewFromFloat(5.0)

// Flag reasons. A transaction is flagged for at most one reason: rules are
// evaluated in a fixed order and the first match wins.
const (
	ReasonHighFrequency = "High transaction frequency detected."
	ReasonAmountAnomaly = "Transaction amount is significantly higher than average."
)

// fraudService classifies candidate transactions against an account's recent
// history. It never mutates the account or writes the transaction; the
// transaction processor acts on the classification.
type fraudService struct {
	txnRepo portsrepo.TransactionReader
	now     func() time.Time
}

// NewFraudService creates the fraud detection engine.
func NewFraudService(txnRepo portsrepo.TransactionReader) portssvc.FraudCheckSvc {
	return &fraudService{txnRepo: txnRepo, now: time.Now}
}

var _ portssvc.FraudCheckSvc = (*fraudService)(nil)

// Evaluate classifies the candidate transaction. The reads run on the supplied
// store transaction so they observe the same serialized snapshot the caller
// locked. A non-nil error is a store failure, not an inconclusive result.
func (s *fraudService) Evaluate(ctx context.Context, tx pgx.Tx, account domain.Account, candidate domain.Transaction) (bool, string, error) {
	tooFrequent, err := s.isTransactionFrequencyTooHigh(ctx, tx, account.AccountID)
	if err != nil {
		return false, "", fmt.Errorf("frequency check for account %d: %w", account.AccountID, err)
	}
	if tooFrequent {
		return true, ReasonHighFrequency, nil
	}

	if s.isTransactionAmountAnomalous(ctx, account, candidate.Amount) {
		return true, ReasonAmountAnomaly, nil
	}

	return false, "", nil
}

// isTransactionFrequencyTooHigh reports whether the account already has at
// least frequencyTransactionLimit committed transactions inside the window.
// The candidate is not yet persisted, so the check asks whether it would be
// the (limit+1)th or later.
func (s *fraudService) isTransactionFrequencyTooHigh(ctx context.Context, tx pgx.Tx, accountID int64) (bool, error) {
	windowStart := s.now().Add(-frequencyWindow)

	count, err := s.txnRepo.CountTransactionsSince(ctx, tx, accountID, windowStart)
	if err != nil {
		return false, err
	}

	middleware.GetLoggerFromCtx(ctx).Debug("Frequency window counted",
		slog.Int64("account_id", accountID),
		slog.Int64("recent_transactions", count),
	)
	return count >= frequencyTransactionLimit, nil
}

// isTransactionAmountAnomalous reports whether the amount exceeds five times
// the account's running average. With no unflagged history (average zero)
// there is no baseline and the rule never fires. The boundary is strict:
// exactly five times the average is not anomalous.
func (s *fraudService) isTransactionAmountAnomalous(ctx context.Context, account domain.Account, amount decimal.Decimal) bool {
	average := account.AvgTransactionAmount
	if !average.IsPositive() {
		return false
	}

	limit := average.Mul(amountMultiplierLimit)
	middleware.GetLoggerFromCtx(ctx).Debug("Amount anomaly check",
		slog.Int64("account_id", account.AccountID),
		slog.String("amount", amount.String()),
		slog.String("limit", limit.String()),
	)
	return amount.GreaterThan(limit)
}
