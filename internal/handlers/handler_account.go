package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fintrack-labs/bank-ledger-service/internal/apperrors"
	portssvc "github.com/fintrack-labs/bank-ledger-service/internal/core/ports/services"
	"github.com/fintrack-labs/bank-ledger-service/internal/dto"
	"github.com/fintrack-labs/bank-ledger-service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts and their money movements.
type accountHandler struct {
	bankService portssvc.BankSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(bs portssvc.BankSvcFacade) *accountHandler {
	return &accountHandler{
		bankService: bs,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newAccountHandler(bankService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("/:accountID", h.getAccount)
		accounts.GET("/:accountID/transactions", h.getTransactionHistory)
		accounts.POST("/:accountID/deposit", h.deposit)
		accounts.POST("/:accountID/withdraw", h.withdraw)
	}
}

func parseAccountID(c *gin.Context) (int64, bool) {
	accountID, err := strconv.ParseInt(c.Param("accountID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID"})
		return 0, false
	}
	return accountID, true
}

// respondWithServiceError maps service errors to HTTP status codes. Flagged
// transactions are not errors; only validation, missing accounts, funds
// shortfalls, and storage failures arrive here.
func respondWithServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		logger.Warn("Insufficient funds", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
	default:
		logger.Error("Service call failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// createAccount godoc
// @Summary Open a new bank account
// @Description Opens an account, optionally seeded with an initial deposit
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.bankService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves the account's current balance and running average
// @Tags accounts
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	account, err := h.bankService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getTransactionHistory godoc
// @Summary List an account's transactions
// @Description Returns the account's transaction records, newest first
// @Tags accounts
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transactions"
// @Security BearerAuth
// @Router /accounts/{accountID}/transactions [get]
func (h *accountHandler) getTransactionHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	transactions, err := h.bankService.GetTransactionHistory(c.Request.Context(), accountID)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to retrieve transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(transactions))
}

// deposit godoc
// @Summary Deposit into an account
// @Description Credits the amount to the account; the transaction may be flagged for review
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Param   request body dto.AmountRequest true "Deposit amount"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to process deposit"
// @Security BearerAuth
// @Router /accounts/{accountID}/deposit [post]
func (h *accountHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.bankService.Deposit(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to process deposit")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// withdraw godoc
// @Summary Withdraw from an account
// @Description Debits the amount from the account if funds suffice; the transaction may be flagged for review
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Param   request body dto.AmountRequest true "Withdrawal amount"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input, validation error, or insufficient funds"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to process withdrawal"
// @Security BearerAuth
// @Router /accounts/{accountID}/withdraw [post]
func (h *accountHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Withdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.bankService.Withdraw(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to process withdrawal")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
