package services

import (
	"context"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type conversionService struct {
	BaseService
	rates *domain.RateTable
}

func NewConversionService(rates *domain.RateTable) portssvc.ConversionSvcFacade {
	return &conversionService{rates: rates}
}

var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)

func (s *conversionService) ListCurrencies(ctx context.Context) []domain.CurrencyInfo {
	return domain.SupportedCurrencies()
}

func (s *conversionService) GetRate(ctx context.Context, from, to domain.Currency) (decimal.Decimal, error) {
	rate, err := s.rates.GetRate(from, to)
	if err != nil {
		s.LogDebug(ctx, "Rate lookup failed", "from", from, "to", to)
	}
	return rate, err
}

func (s *conversionService) Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Currency) (decimal.Decimal, error) {
	return s.rates.Convert(amount, from, to)
}
