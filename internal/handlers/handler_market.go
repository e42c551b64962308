package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_sim/internal/dto"
	"github.com/SscSPs/bank_ledger_sim/internal/middleware"
	"github.com/gin-gonic/gin"
)

type marketHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

func registerMarketRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := &marketHandler{investmentService: investmentService}
	rg.POST("/market/advance-day", h.advanceDay)
}

// advanceDay godoc
// @Summary Advance the simulated market by one day
// @Description Moves the calendar forward and compounds every investment account with the day's rate.
// @Tags market
// @Produce json
// @Success 200 {object} dto.AdvanceDayResponse
// @Failure 500 {object} ErrorResponse "Sweep failed"
// @Security BearerAuth
// @Router /market/advance-day [post]
func (h *marketHandler) advanceDay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.investmentService.AdvanceDay(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to advance the simulated day")
		return
	}

	logger.Info("Simulated day advanced",
		slog.Time("date", result.Date),
		slog.String("rate", result.Rate.String()),
		slog.Int("updated", result.Updated))
	c.JSON(http.StatusOK, dto.AdvanceDayResponse{
		Today: h.investmentService.Today(),
		Sweep: *result,
	})
}
