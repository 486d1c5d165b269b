package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fintrack-labs/bank-ledger-service/internal/apperrors"
	"github.com/fintrack-labs/bank-ledger-service/internal/core/domain"
	portssvc "github.com/fintrack-labs/bank-ledger-service/internal/core/ports/services"
	"github.com/fintrack-labs/bank-ledger-service/internal/dto"
	"github.com/fintrack-labs/bank-ledger-service/internal/handlers"
	"github.com/fintrack-labs/bank-ledger-service/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BankService ---
type MockBankService struct {
	mock.Mock
}

var _ portssvc.BankSvcFacade = (*MockBankService)(nil)

func (m *MockBankService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockBankService) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.Account, error) {
	args := m.Called(ctx, accountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockBankService) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.Account, error) {
	args := m.Called(ctx, accountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockBankService) Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal) error {
	args := m.Called(ctx, fromAccountID, toAccountID, amount)
	return args.Error(0)
}

func (m *MockBankService) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockBankService) GetTransactionHistory(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockBankService *MockBankService
	account         domain.Account
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		suite.Require().NoError(dto.RegisterValidations(v))
	}

	suite.router = gin.New()
	suite.mockBankService = new(MockBankService)

	cfg := &config.Config{
		AuthDisabled: true,
		IsProduction: true, // keeps swagger routes out of the test router
	}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{Bank: suite.mockBankService})

	suite.account = domain.Account{
		AccountID:            1,
		CustomerName:         "Ada",
		AccountType:          "CHECKING",
		Balance:              decimal.RequireFromString("1000.00"),
		AvgTransactionAmount: decimal.RequireFromString("1000.00"),
		CreatedAt:            time.Now().UTC(),
	}
}

func (suite *AccountHandlerTestSuite) performJSON(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	reqBody := dto.CreateAccountRequest{
		CustomerName:   "Ada",
		AccountType:    "CHECKING",
		InitialDeposit: decimal.RequireFromString("1000.00"),
	}
	suite.mockBankService.On("CreateAccount", mock.Anything, mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
		return req.CustomerName == "Ada" && req.InitialDeposit.Equal(reqBody.InitialDeposit)
	})).Return(&suite.account, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/accounts", reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.AccountID)
	suite.mockBankService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MissingName() {
	w := suite.performJSON(http.MethodPost, "/api/v1/accounts", gin.H{"accountType": "CHECKING"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBankService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_Success() {
	suite.mockBankService.On("GetAccount", mock.Anything, int64(1)).Return(&suite.account, nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/accounts/1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Ada", resp.CustomerName)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockBankService.On("GetAccount", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/accounts/99", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_InvalidID() {
	w := suite.performJSON(http.MethodGet, "/api/v1/accounts/not-a-number", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBankService.AssertNotCalled(suite.T(), "GetAccount", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestDeposit_Success() {
	amount := decimal.RequireFromString("200.00")
	updated := suite.account
	updated.Balance = decimal.RequireFromString("1200.00")
	suite.mockBankService.On("Deposit", mock.Anything, int64(1), mock.MatchedBy(amount.Equal)).Return(&updated, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/accounts/1/deposit", gin.H{"amount": "200.00"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(updated.Balance))
}

func (suite *AccountHandlerTestSuite) TestDeposit_NegativeAmountRejectedByBinding() {
	w := suite.performJSON(http.MethodPost, "/api/v1/accounts/1/deposit", gin.H{"amount": "-5.00"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBankService.AssertNotCalled(suite.T(), "Deposit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestDeposit_SubCentAmountRejectedByBinding() {
	w := suite.performJSON(http.MethodPost, "/api/v1/accounts/1/deposit", gin.H{"amount": "0.001"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBankService.AssertNotCalled(suite.T(), "Deposit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestWithdraw_InsufficientFunds() {
	balance := decimal.RequireFromString("50.00")
	suite.mockBankService.On("Withdraw", mock.Anything, int64(1), mock.Anything).
		Return(nil, apperrors.NewInsufficientFundsError(balance)).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/accounts/1/withdraw", gin.H{"amount": "100.00"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "50.00")
}

func (suite *AccountHandlerTestSuite) TestTransfer_Success() {
	suite.mockBankService.On("Transfer", mock.Anything, int64(1), int64(2), mock.MatchedBy(decimal.RequireFromString("75.00").Equal)).
		Return(nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/transfer", gin.H{
		"fromAccountID": 1,
		"toAccountID":   2,
		"amount":        "75.00",
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockBankService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestTransfer_StoreFailure() {
	suite.mockBankService.On("Transfer", mock.Anything, int64(1), int64(2), mock.Anything).
		Return(fmt.Errorf("save transfer: %w", apperrors.ErrStoreFailure)).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/transfer", gin.H{
		"fromAccountID": 1,
		"toAccountID":   2,
		"amount":        "75.00",
	})

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetTransactionHistory_Success() {
	reason := "Transaction amount is significantly higher than average."
	history := []domain.Transaction{
		{TransactionID: 2, AccountID: 1, TransactionType: domain.Withdrawal, Amount: decimal.RequireFromString("9000.00"), Flagged: true, ReasonForFlag: &reason},
		{TransactionID: 1, AccountID: 1, TransactionType: domain.Deposit, Amount: decimal.RequireFromString("1000.00")},
	}
	suite.mockBankService.On("GetTransactionHistory", mock.Anything, int64(1)).Return(history, nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/accounts/1/transactions", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.True(resp[0].Flagged)
	suite.Require().NotNil(resp[0].ReasonForFlag)
	suite.Equal(reason, *resp[0].ReasonForFlag)
	suite.Nil(resp[1].ReasonForFlag)
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
