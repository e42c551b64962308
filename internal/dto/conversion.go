package dto

import (
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertParams are the query parameters of a conversion quote.
type ConvertParams struct {
	From   domain.Currency `form:"from" binding:"required,currency"`
	To     domain.Currency `form:"to" binding:"required,currency"`
	Amount string          `form:"amount" binding:"required"`
}

// ConvertResponse is a conversion quote from the rate table.
type ConvertResponse struct {
	From            domain.Currency `json:"from"`
	To              domain.Currency `json:"to"`
	Rate            decimal.Decimal `json:"rate"`
	Amount          decimal.Decimal `json:"amount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
}

// ListCurrenciesResponse lists the currency catalog.
type ListCurrenciesResponse struct {
	Currencies []domain.CurrencyInfo `json:"currencies"`
}
