package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fintrack-labs/bank-ledger-service/internal/core/ports/services"
	"github.com/fintrack-labs/bank-ledger-service/internal/dto"
	"github.com/fintrack-labs/bank-ledger-service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transferHandler handles HTTP requests for account-to-account transfers.
type transferHandler struct {
	bankService portssvc.BankSvcFacade
}

// registerTransferRoutes registers the transfer route.
func registerTransferRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := &transferHandler{bankService: bankService}
	rg.POST("/transfer", h.transfer)
}

// transfer godoc
// @Summary Transfer between accounts
// @Description Moves the amount from one account to another atomically; either leg may be flagged for review
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   request body dto.TransferRequest true "Transfer details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid input, validation error, or insufficient funds"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to process transfer"
// @Security BearerAuth
// @Router /transfer [post]
func (h *transferHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if callerID, ok := middleware.GetCallerIDFromContext(c); ok {
		logger = logger.With(slog.String("caller_id", callerID))
		logger.Info("Transfer requested",
			slog.Int64("from_account_id", req.FromAccountID),
			slog.Int64("to_account_id", req.ToAccountID),
		)
	}

	err := h.bankService.Transfer(c.Request.Context(), req.FromAccountID, req.ToAccountID, req.Amount)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to process transfer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "transfer completed"})
}
