package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_sim/internal/dto"
	"github.com/SscSPs/bank_ledger_sim/internal/middleware"
	"github.com/gin-gonic/gin"
)

// summaryHandler reports the caller's assets and debts.
type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
}

func registerSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade) {
	h := &summaryHandler{summaryService: summaryService}
	rg.GET("/summary", h.getSummary)
}

// getSummary godoc
// @Summary Assets, debts and net worth of the logged-in client
// @Tags summary
// @Produce json
// @Param currency query string false "Currency of the totals" default(USD)
// @Success 200 {object} dto.SummaryResponse
// @Security BearerAuth
// @Router /summary [get]
func (h *summaryHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID, ok := middleware.GetClientIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, err, "Invalid query parameters")
		return
	}

	summary, err := h.summaryService.GetClientSummary(c.Request.Context(), clientID, params.Currency)
	if err != nil {
		respondError(c, logger, err, "Failed to build summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}
