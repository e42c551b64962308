package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_sim/internal/dto"
	"github.com/SscSPs/bank_ledger_sim/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService    portssvc.AccountSvcFacade
	investmentService portssvc.InvestmentSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, is portssvc.InvestmentSvcFacade) *accountHandler {
	return &accountHandler{
		accountService:    as,
		investmentService: is,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, investmentService portssvc.InvestmentSvcFacade) {
	h := newAccountHandler(accountService, investmentService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.GET("/:id/transactions", h.listTransactions)
		accounts.GET("/:id/investment", h.getInvestmentReport)
	}

	rg.GET("/clients/:alias/accounts", h.listCompatibleAccounts)
}

// createAccount godoc
// @Summary Open a new account
// @Description Opens a savings, credit or investment account for the logged-in client
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create account"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err, "Invalid request format")
		return
	}

	ctx := c.Request.Context()
	var (
		acc *domain.Account
		err error
	)
	switch req.Kind {
	case domain.KindSavings:
		acc, err = h.accountService.CreateSavingsAccount(ctx, req.Currency, req.InitialBalance)
	case domain.KindCredit:
		acc, err = h.accountService.CreateCreditAccount(ctx, req.Currency, req.InitialBalance, req.CreditLimit)
	case domain.KindInvestment:
		acc, err = h.accountService.CreateInvestmentAccount(ctx, req.Currency, req.InitialBalance)
	default:
		err = fmt.Errorf("%w: unknown account kind '%s'", apperrors.ErrValidation, req.Kind)
	}
	if err != nil {
		respondError(c, logger, err, "Failed to create account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", acc.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(acc))
}

// listAccounts godoc
// @Summary List accounts of the logged-in client
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.ListAccountsResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID, ok := middleware.GetClientIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	accounts, err := h.accountService.ListAccountsOfClient(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 403 {object} ErrorResponse "Forbidden (accessing another client's account)"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_id", c.Param("id")))

	account, err := h.accountService.GetAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listTransactions godoc
// @Summary List an account's transactions, newest first
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Security BearerAuth
// @Router /accounts/{id}/transactions [get]
func (h *accountHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_id", c.Param("id")))
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, err, "Invalid query parameters")
		return
	}

	txs, next, err := h.accountService.ListTransactions(c.Request.Context(), c.Param("id"), params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txs),
		NextToken:    next,
	})
}

// getInvestmentReport godoc
// @Summary Performance of an investment account
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} domain.InvestmentReport
// @Failure 400 {object} ErrorResponse "Not an investment account"
// @Security BearerAuth
// @Router /accounts/{id}/investment [get]
func (h *accountHandler) getInvestmentReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_id", c.Param("id")))

	report, err := h.investmentService.GetInvestmentReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to build investment report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// listCompatibleAccounts godoc
// @Summary List another client's accounts that can receive a third-party transfer
// @Description Only identifiers, kind and currency are returned; balances stay private to the owner.
// @Tags accounts
// @Produce  json
// @Param   alias path string true "Client alias"
// @Param   currency query string true "Currency code"
// @Success 200 {object} dto.ListPayeeAccountsResponse
// @Failure 404 {object} ErrorResponse "Unknown alias"
// @Security BearerAuth
// @Router /clients/{alias}/accounts [get]
func (h *accountHandler) listCompatibleAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.CompatibleAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, err, "Invalid query parameters")
		return
	}

	accounts, err := h.accountService.FindCompatibleAccountsByAlias(c.Request.Context(), c.Param("alias"), params.Currency)
	if err != nil {
		respondError(c, logger, err, "Failed to look up accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListPayeeAccountsResponse{Accounts: dto.ToPayeeAccountResponses(accounts)})
}
