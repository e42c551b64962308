package services

import (
	"context"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConversionSvcFacade exposes the currency catalog and the rate table.
type ConversionSvcFacade interface {
	ListCurrencies(ctx context.Context) []domain.CurrencyInfo
	GetRate(ctx context.Context, from, to domain.Currency) (decimal.Decimal, error)
	Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Currency) (decimal.Decimal, error)
}
