package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
)

// Currency is an ISO-style currency code supported by the platform.
type Currency string

const (
	ARS Currency = "ARS"
	EUR Currency = "EUR"
	USD Currency = "USD"
)

// CurrencyInfo represents a supported currency in the catalog.
type CurrencyInfo struct {
	CurrencyCode Currency `json:"currencyCode"` // e.g., "USD"
	Symbol       string   `json:"symbol"`       // e.g., "US$"
	Name         string   `json:"name"`         // e.g., "US Dollar"
}

var currencyCatalog = map[Currency]CurrencyInfo{
	ARS: {CurrencyCode: ARS, Symbol: "$", Name: "Argentine Peso"},
	EUR: {CurrencyCode: EUR, Symbol: "€", Name: "Euro"},
	USD: {CurrencyCode: USD, Symbol: "US$", Name: "US Dollar"},
}

// SupportedCurrencies returns the catalog ordered by currency code.
func SupportedCurrencies() []CurrencyInfo {
	out := make([]CurrencyInfo, 0, len(currencyCatalog))
	for _, info := range currencyCatalog {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrencyCode < out[j].CurrencyCode })
	return out
}

// ParseCurrency resolves a case-insensitive code against the catalog.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: unsupported currency code '%s'", apperrors.ErrValidation, code)
	}
	return c, nil
}

// IsValid reports whether the currency is part of the catalog.
func (c Currency) IsValid() bool {
	_, ok := currencyCatalog[c]
	return ok
}

// Symbol returns the display symbol, or the code itself for unknown currencies.
func (c Currency) Symbol() string {
	if info, ok := currencyCatalog[c]; ok {
		return info.Symbol
	}
	return string(c)
}

// Name returns the display name of the currency.
func (c Currency) Name() string {
	if info, ok := currencyCatalog[c]; ok {
		return info.Name
	}
	return string(c)
}

func (c Currency) String() string {
	return string(c)
}
