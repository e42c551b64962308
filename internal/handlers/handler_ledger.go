package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_sim/internal/dto"
	"github.com/SscSPs/bank_ledger_sim/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler exposes the money-moving operations. A request that passes
// validation always answers 201 with the record; callers read its status to
// tell a settled movement from a failed one.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &ledgerHandler{ledgerService: ledgerService}

	rg.POST("/accounts/:id/deposit", h.deposit)
	rg.POST("/accounts/:id/withdraw", h.withdraw)

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.transfer)
		transfers.POST("/third-party", h.transferToThirdParty)
	}
}

// deposit godoc
// @Summary Deposit into an account
// @Tags ledger
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param body body dto.AmountRequest true "Amount and note"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id}/deposit [post]
func (h *ledgerHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_id", c.Param("id")))
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err, "Invalid request body")
		return
	}

	record, err := h.ledgerService.Deposit(c.Request.Context(), c.Param("id"), req.Amount, req.Note)
	h.respond(c, logger, record, err, "Failed to deposit")
}

// withdraw godoc
// @Summary Withdraw from an account
// @Tags ledger
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param body body dto.AmountRequest true "Amount and note"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id}/withdraw [post]
func (h *ledgerHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_id", c.Param("id")))
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err, "Invalid request body")
		return
	}

	record, err := h.ledgerService.Withdraw(c.Request.Context(), c.Param("id"), req.Amount, req.Note)
	h.respond(c, logger, record, err, "Failed to withdraw")
}

// transfer godoc
// @Summary Transfer between the caller's accounts
// @Description Converts the amount when the accounts use different currencies.
// @Tags ledger
// @Accept json
// @Produce json
// @Param body body dto.TransferRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfers [post]
func (h *ledgerHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err, "Invalid request body")
		return
	}

	record, err := h.ledgerService.Transfer(c.Request.Context(), req.SourceAccountID, req.TargetAccountID, req.Amount, req.Note)
	h.respond(c, logger, record, err, "Failed to transfer")
}

// transferToThirdParty godoc
// @Summary Transfer to another client's account in the same currency
// @Tags ledger
// @Accept json
// @Produce json
// @Param body body dto.TransferRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfers/third-party [post]
func (h *ledgerHandler) transferToThirdParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err, "Invalid request body")
		return
	}

	record, err := h.ledgerService.TransferToThirdParty(c.Request.Context(), req.SourceAccountID, req.TargetAccountID, req.Amount, req.Note)
	h.respond(c, logger, record, err, "Failed to transfer")
}

func (h *ledgerHandler) respond(c *gin.Context, logger *slog.Logger, record *domain.Transaction, err error, fallback string) {
	if err != nil {
		respondError(c, logger, err, fallback)
		return
	}
	logger.Info("Transaction recorded",
		slog.String("transaction_id", record.TransactionID),
		slog.String("status", string(record.Status)))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(record))
}
