package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrack-labs/bank-ledger-service/internal/apperrors"
	"github.com/fintrack-labs/bank-ledger-service/internal/core/domain"
	portsrepo "github.com/fintrack-labs/bank-ledger-service/internal/core/ports/repositories"
	portssvc "github.com/fintrack-labs/bank-ledger-service/internal/core/ports/services"
	"github.com/fintrack-labs/bank-ledger-service/internal/dto"
	"github.com/fintrack-labs/bank-ledger-service/internal/middleware"
	"github.com/fintrack-labs/bank-ledger-service/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// bankService orchestrates monetary operations end-to-end: it loads and locks
// account state, asks the fraud engine to classify the candidate transaction,
// applies the balance and running-average arithmetic, and commits the account
// mutation together with the transaction record as one atomic unit.
type bankService struct {
	ledgerRepo portsrepo.LedgerRepository
	fraudSvc   portssvc.FraudCheckSvc
}

// NewBankService creates a new bank service.
func NewBankService(ledgerRepo portsrepo.LedgerRepository, fraudSvc portssvc.FraudCheckSvc) portssvc.BankSvcFacade {
	return &bankService{
		ledgerRepo: ledgerRepo,
		fraudSvc:   fraudSvc,
	}
}

var _ portssvc.BankSvcFacade = (*bankService)(nil)

// validateAmount enforces the monetary-amount contract independently of the
// DTO binding: strictly positive, at most two decimal places. Anything finer
// than a cent would diverge from what the store's 2dp columns persist.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if amount.Exponent() < -2 {
		return fmt.Errorf("%w: amount must have at most two decimal places", apperrors.ErrValidation)
	}
	return nil
}

// CreateAccount opens a new account. A positive initial deposit seeds the
// running average and is recorded as the account's first (unflagged)
// transaction, so the balance always equals the sum of committed transaction
// effects. The opening deposit is not fraud-scored: there is no history yet.
func (s *bankService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.CustomerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
	}
	if req.InitialDeposit.IsNegative() {
		return nil, fmt.Errorf("%w: initial deposit must not be negative", apperrors.ErrValidation)
	}
	if req.InitialDeposit.Exponent() < -2 {
		return nil, fmt.Errorf("%w: initial deposit must have at most two decimal places", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	account := domain.Account{
		CustomerName:         req.CustomerName,
		AccountType:          req.AccountType,
		Balance:              req.InitialDeposit,
		AvgTransactionAmount: accounting.SeedAverage(req.InitialDeposit),
		CreatedAt:            now,
	}

	var created *domain.Account
	err := s.ledgerRepo.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		saved, err := s.ledgerRepo.SaveAccount(ctx, tx, account)
		if err != nil {
			return err
		}
		if req.InitialDeposit.IsPositive() {
			opening := domain.Transaction{
				AccountID:       saved.AccountID,
				TransactionType: domain.Deposit,
				Amount:          req.InitialDeposit,
				TransactionTime: now,
			}
			if _, err := s.ledgerRepo.AppendTransactionInTx(ctx, tx, opening); err != nil {
				return err
			}
		}
		created = saved
		return nil
	})
	if err != nil {
		logger.Error("Failed to create account", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Account created", slog.Int64("account_id", created.AccountID))
	return created, nil
}

// Deposit credits amount to the account as one atomic unit.
func (s *bankService) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.Account, error) {
	return s.applyOperation(ctx, accountID, amount, domain.Deposit)
}

// Withdraw debits amount from the account as one atomic unit. The
// insufficient-funds check runs before fraud classification; a rejected
// withdrawal never creates a transaction record and never enters the
// frequency-window history.
func (s *bankService) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.Account, error) {
	return s.applyOperation(ctx, accountID, amount, domain.Withdrawal)
}

func (s *bankService) applyOperation(ctx context.Context, accountID int64, amount decimal.Decimal, txnType domain.TransactionType) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	var result *domain.Account
	err := s.ledgerRepo.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		account, err := s.ledgerRepo.FindAccountForUpdate(ctx, tx, accountID)
		if err != nil {
			return err
		}
		updated, err := s.applyLeg(ctx, tx, *account, amount, txnType)
		if err != nil {
			return err
		}
		result = updated
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInsufficientFunds) {
			logger.Error("Operation failed", slog.String("type", string(txnType)), slog.Int64("account_id", accountID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Operation committed",
		slog.String("type", string(txnType)),
		slog.Int64("account_id", accountID),
		slog.String("amount", amount.StringFixed(2)),
	)
	return result, nil
}

// applyLeg runs one leg (a single deposit or withdrawal) against an account
// that the caller has already locked for update. The sequence is fixed:
// funds guard (withdrawals), fraud classification, balance update, conditional
// average recompute, then the account write and the ledger append.
func (s *bankService) applyLeg(ctx context.Context, tx pgx.Tx, account domain.Account, amount decimal.Decimal, txnType domain.TransactionType) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if txnType == domain.Withdrawal && account.Balance.LessThan(amount) {
		return nil, apperrors.NewInsufficientFundsError(account.Balance)
	}

	candidate := domain.Transaction{
		AccountID:       account.AccountID,
		TransactionType: txnType,
		Amount:          amount,
		TransactionTime: time.Now().UTC(),
	}

	flagged, reason, err := s.fraudSvc.Evaluate(ctx, tx, account, candidate)
	if err != nil {
		return nil, err
	}
	if flagged {
		candidate.Flagged = true
		candidate.ReasonForFlag = &reason
		logger.Warn("Transaction flagged",
			slog.Int64("account_id", account.AccountID),
			slog.String("type", string(txnType)),
			slog.String("reason", reason),
		)
	}

	// Money moves whether or not the transaction is flagged; flagging only
	// excludes it from the running average and marks it for review.
	updated, err := accounting.ApplyDelta(account, candidate.SignedAmount())
	if err != nil {
		return nil, err
	}

	if !flagged {
		unflaggedCount, err := s.ledgerRepo.CountUnflaggedTransactions(ctx, tx, account.AccountID)
		if err != nil {
			return nil, err
		}
		updated.AvgTransactionAmount = accounting.RecomputeAverage(account.AvgTransactionAmount, amount, unflaggedCount)
	}

	if err := s.ledgerRepo.UpdateAccountInTx(ctx, tx, updated); err != nil {
		return nil, err
	}
	if _, err := s.ledgerRepo.AppendTransactionInTx(ctx, tx, candidate); err != nil {
		return nil, err
	}

	return &updated, nil
}

// Transfer moves amount from one account to another as an atomic pair of
// legs: the withdrawal runs first, then the deposit, and a failure of either
// rolls back both. Both rows are locked in ascending account-ID order before
// either leg runs so that opposing concurrent transfers cannot deadlock. Each
// leg is fraud-scored independently against its own account's history.
func (s *bankService) Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateAmount(amount); err != nil {
		return err
	}
	if fromAccountID == toAccountID {
		return fmt.Errorf("%w: source and destination accounts must differ", apperrors.ErrValidation)
	}

	err := s.ledgerRepo.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		firstID, secondID := fromAccountID, toAccountID
		if secondID < firstID {
			firstID, secondID = secondID, firstID
		}

		first, err := s.ledgerRepo.FindAccountForUpdate(ctx, tx, firstID)
		if err != nil {
			return err
		}
		second, err := s.ledgerRepo.FindAccountForUpdate(ctx, tx, secondID)
		if err != nil {
			return err
		}

		fromAccount, toAccount := first, second
		if fromAccount.AccountID != fromAccountID {
			fromAccount, toAccount = second, first
		}

		if _, err := s.applyLeg(ctx, tx, *fromAccount, amount, domain.Withdrawal); err != nil {
			return err
		}
		if _, err := s.applyLeg(ctx, tx, *toAccount, amount, domain.Deposit); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInsufficientFunds) {
			logger.Error("Transfer failed",
				slog.Int64("from_account_id", fromAccountID),
				slog.Int64("to_account_id", toAccountID),
				slog.String("error", err.Error()),
			)
		}
		return err
	}

	logger.Info("Transfer committed",
		slog.Int64("from_account_id", fromAccountID),
		slog.Int64("to_account_id", toAccountID),
		slog.String("amount", amount.StringFixed(2)),
	)
	return nil
}

// GetAccount returns the current state of an account.
func (s *bankService) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.ledgerRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find account", slog.Int64("account_id", accountID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return account, nil
}

// GetTransactionHistory returns the account's transactions newest first.
func (s *bankService) GetTransactionHistory(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.ledgerRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	transactions, err := s.ledgerRepo.ListTransactionsByAccountID(ctx, accountID)
	if err != nil {
		logger.Error("Failed to list transactions", slog.Int64("account_id", accountID), slog.String("error", err.Error()))
		return nil, err
	}
	return transactions, nil
}
