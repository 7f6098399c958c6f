package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mcbank/mc_bank_app/internal/apperrors"
	portssvc "github.com/mcbank/mc_bank_app/internal/core/ports/services"
	"github.com/mcbank/mc_bank_app/internal/dto"
	"github.com/mcbank/mc_bank_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService     portssvc.AccountSvcFacade
	transactionService portssvc.TransactionWriterSvc
	ledgerService      portssvc.LedgerSvc
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, ts portssvc.TransactionWriterSvc, ls portssvc.LedgerSvc) *accountHandler {
	return &accountHandler{
		accountService:     as,
		transactionService: ts,
		ledgerService:      ls,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, as portssvc.AccountSvcFacade, ts portssvc.TransactionWriterSvc, ls portssvc.LedgerSvc) {
	h := newAccountHandler(as, ts, ls)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("", h.createAccount)
		accounts.GET("/:id", h.getAccount)
		accounts.PUT("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
		accounts.POST("/:id/deposit", h.quickDeposit)
		accounts.POST("/:id/withdraw", h.quickWithdraw)
	}
}

// listAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	accounts := h.accountService.ListAccounts(c.Request.Context())
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// createAccount godoc
// @Summary Create a new account
// @Tags accounts
// @Accept json
// @Produce json
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	newAccount, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating account", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(newAccount))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce json
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Update an account's name or balance
// @Tags accounts
// @Accept json
// @Produce json
// @Router /accounts/{id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	// The store treats unknown ids as a silent no-op; surface 404 here so the
	// API caller learns the id was stale.
	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account"})
		}
		return
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Balance != nil {
		account.Balance = *req.Balance
	}

	if err := h.accountService.UpdateAccount(c.Request.Context(), *account); err != nil {
		logger.Error("Failed to update account in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deleteAccount godoc
// @Summary Delete an account and all its transactions
// @Tags accounts
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	if err := h.ledgerService.DeleteAccountCascade(c.Request.Context(), accountID); err != nil {
		logger.Error("Failed to delete account", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	c.Status(http.StatusNoContent)
}

// quickDeposit godoc
// @Summary Record a deposit against an account
// @Tags accounts
// @Accept json
// @Produce json
// @Router /accounts/{id}/deposit [post]
func (h *accountHandler) quickDeposit(c *gin.Context) {
	h.quickTransaction(c, "deposit")
}

// quickWithdraw godoc
// @Summary Record a withdrawal against an account
// @Tags accounts
// @Accept json
// @Produce json
// @Router /accounts/{id}/withdraw [post]
func (h *accountHandler) quickWithdraw(c *gin.Context) {
	h.quickTransaction(c, "withdraw")
}

// quickTransaction records a deposit or withdrawal shortcut: the amount comes
// in positive, the sign convention is applied here before the store is called
// (deposits positive, withdrawals negative).
func (h *accountHandler) quickTransaction(c *gin.Context, txnType string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	var req dto.QuickTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for quick transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		}
		return
	}

	amount := req.Amount
	description := "Deposit"
	if txnType == "withdraw" {
		amount = amount.Neg()
		description = "Withdraw"
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), dto.CreateTransactionRequest{
		AccountID:   account.AccountID,
		Type:        txnType,
		Amount:      amount,
		Description: description,
	})
	if err != nil {
		logger.Error("Failed to record quick transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}
