package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_sim/internal/dto"
	"github.com/SscSPs/bank_ledger_sim/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type currencyHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

func registerCurrencyRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := &currencyHandler{conversionService: conversionService}

	rg.GET("/currencies", h.listCurrencies)
	rg.GET("/rates/convert", h.convert)
}

// listCurrencies godoc
// @Summary List supported currencies
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.ListCurrenciesResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ListCurrenciesResponse{
		Currencies: h.conversionService.ListCurrencies(c.Request.Context()),
	})
}

// convert godoc
// @Summary Quote a currency conversion
// @Tags currencies
// @Produce json
// @Param from query string true "Source currency"
// @Param to query string true "Target currency"
// @Param amount query string true "Amount in the source currency"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/convert [get]
func (h *currencyHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, err, "Invalid query parameters")
		return
	}
	amount, err := decimal.NewFromString(params.Amount)
	if err != nil {
		badRequest(c, logger, fmt.Errorf("%w: amount '%s'", apperrors.ErrValidation, params.Amount), "Invalid query parameters")
		return
	}

	rate, err := h.conversionService.GetRate(c.Request.Context(), params.From, params.To)
	if err != nil {
		respondError(c, logger, err, "Failed to look up rate")
		return
	}
	converted, err := h.conversionService.Convert(c.Request.Context(), amount, params.From, params.To)
	if err != nil {
		respondError(c, logger, err, "Failed to convert amount")
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		From:            params.From,
		To:              params.To,
		Rate:            rate,
		Amount:          amount,
		ConvertedAmount: converted,
	})
}
