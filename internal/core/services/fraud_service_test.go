package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fintrack-labs/bank-ledger-service/internal/core/domain"
	portsrepo "github.com/fintrack-labs/bank-ledger-service/internal/core/ports/repositories"
	portssvc "github.com/fintrack-labs/bank-ledger-service/internal/core/ports/services"
	"github.com/fintrack-labs/bank-ledger-service/internal/core/services"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionReader ---
type MockTransactionReader struct {
	mock.Mock
}

var _ portsrepo.TransactionReader = (*MockTransactionReader)(nil)

func (m *MockTransactionReader) ListTransactionsByAccountID(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionReader) CountTransactionsSince(ctx context.Context, tx pgx.Tx, accountID int64, since time.Time) (int64, error) {
	args := m.Called(ctx, tx, accountID, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionReader) CountUnflaggedTransactions(ctx context.Context, tx pgx.Tx, accountID int64) (int64, error) {
	args := m.Called(ctx, tx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite Setup ---
type FraudServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionReader
	service     portssvc.FraudCheckSvc
	account     domain.Account
}

func (suite *FraudServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionReader)
	suite.service = services.NewFraudService(suite.mockTxnRepo)
	suite.account = domain.Account{
		AccountID:            7,
		Balance:              decimal.RequireFromString("1000.00"),
		AvgTransactionAmount: decimal.RequireFromString("100.00"),
	}
}

func (suite *FraudServiceTestSuite) candidate(amount string) domain.Transaction {
	return domain.Transaction{
		AccountID:       suite.account.AccountID,
		TransactionType: domain.Deposit,
		Amount:          decimal.RequireFromString(amount),
		TransactionTime: time.Now().UTC(),
	}
}

func (suite *FraudServiceTestSuite) expectRecentCount(count int64) {
	suite.mockTxnRepo.On("CountTransactionsSince", mock.Anything, mock.Anything, suite.account.AccountID, mock.AnythingOfType("time.Time")).
		Return(count, nil).Once()
}

func (suite *FraudServiceTestSuite) TestNotFlaggedBelowBothThresholds() {
	suite.expectRecentCount(9)

	flagged, reason, err := suite.service.Evaluate(context.Background(), nil, suite.account, suite.candidate("500.00"))

	suite.Require().NoError(err)
	suite.False(flagged)
	suite.Empty(reason)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *FraudServiceTestSuite) TestFrequencyLimitReached() {
	suite.expectRecentCount(10)

	flagged, reason, err := suite.service.Evaluate(context.Background(), nil, suite.account, suite.candidate("10.00"))

	suite.Require().NoError(err)
	suite.True(flagged)
	suite.Equal(services.ReasonHighFrequency, reason)
}

func (suite *FraudServiceTestSuite) TestAmountJustAboveMultiple() {
	suite.expectRecentCount(0)

	// Average is 100.00, so the limit is 500.00; one cent above trips the rule.
	flagged, reason, err := suite.service.Evaluate(context.Background(), nil, suite.account, suite.candidate("500.01"))

	suite.Require().NoError(err)
	suite.True(flagged)
	suite.Equal(services.ReasonAmountAnomaly, reason)
}

func (suite *FraudServiceTestSuite) TestAmountExactlyAtMultipleNotFlagged() {
	suite.expectRecentCount(0)

	flagged, reason, err := suite.service.Evaluate(context.Background(), nil, suite.account, suite.candidate("500.00"))

	suite.Require().NoError(err)
	suite.False(flagged)
	suite.Empty(reason)
}

func (suite *FraudServiceTestSuite) TestZeroAverageDisablesAmountRule() {
	suite.account.AvgTransactionAmount = decimal.Zero
	suite.expectRecentCount(0)

	flagged, _, err := suite.service.Evaluate(context.Background(), nil, suite.account, suite.candidate("1000000.00"))

	suite.Require().NoError(err)
	suite.False(flagged)
}

func (suite *FraudServiceTestSuite) TestFrequencyTakesPrecedenceOverAmount() {
	suite.expectRecentCount(25)

	// Both rules would match; the frequency reason must win.
	flagged, reason, err := suite.service.Evaluate(context.Background(), nil, suite.account, suite.candidate("999999.00"))

	suite.Require().NoError(err)
	suite.True(flagged)
	suite.Equal(services.ReasonHighFrequency, reason)
}

func (suite *FraudServiceTestSuite) TestStoreErrorPropagates() {
	storeErr := errors.New("connection reset")
	suite.mockTxnRepo.On("CountTransactionsSince", mock.Anything, mock.Anything, suite.account.AccountID, mock.AnythingOfType("time.Time")).
		Return(int64(0), storeErr).Once()

	flagged, _, err := suite.service.Evaluate(context.Background(), nil, suite.account, suite.candidate("10.00"))

	suite.Require().Error(err)
	suite.ErrorIs(err, storeErr)
	suite.False(flagged)
}

func TestFraudServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FraudServiceTestSuite))
}
