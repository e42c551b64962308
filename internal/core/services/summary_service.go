package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// summaryService implements the SummarySvcFacade interface
type summaryService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	rates       *domain.RateTable
}

// NewSummaryService creates a new summary service. A nil access controller
// leaves every client's summary readable.
func NewSummaryService(accountRepo portsrepo.AccountReader, rates *domain.RateTable, ac portssvc.AccessController) portssvc.SummarySvcFacade {
	return &summaryService{
		BaseService: BaseService{AccessController: ac},
		accountRepo: accountRepo,
		rates:       rates,
	}
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

func (s *summaryService) CalculateAssetsAndDebts(ctx context.Context, clientID string, currency domain.Currency) (*domain.AssetsAndDebts, error) {
	summary, err := s.GetClientSummary(ctx, clientID, currency)
	if err != nil {
		return nil, err
	}
	return &summary.AssetsAndDebts, nil
}

func (s *summaryService) GetClientSummary(ctx context.Context, clientID string, currency domain.Currency) (*domain.ClientSummary, error) {
	if err := s.AuthorizeClient(ctx, clientID); err != nil {
		return nil, err
	}
	if !currency.IsValid() {
		return nil, fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrValidation, currency)
	}

	accounts, err := s.accountRepo.ListAccountsByOwner(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for summary", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	summary := &domain.ClientSummary{
		AssetsAndDebts: domain.AssetsAndDebts{
			ClientID:    clientID,
			Currency:    currency,
			TotalAssets: decimal.Zero,
			TotalDebts:  decimal.Zero,
		},
		Accounts: make([]domain.AccountBalance, 0, len(accounts)),
	}

	for i := range accounts {
		acc := &accounts[i]
		converted, err := s.rates.Convert(acc.Balance, acc.BaseCurrency, currency)
		if err != nil {
			return nil, fmt.Errorf("failed to convert account %s: %w", acc.AccountID, err)
		}
		if converted.IsNegative() {
			summary.TotalDebts = summary.TotalDebts.Add(converted.Abs())
		} else {
			summary.TotalAssets = summary.TotalAssets.Add(converted)
		}
		summary.Accounts = append(summary.Accounts, domain.AccountBalance{
			AccountID:        acc.AccountID,
			Label:            acc.TypeLabel(),
			BaseCurrency:     acc.BaseCurrency,
			Balance:          acc.Balance,
			ConvertedBalance: converted,
		})
	}
	summary.NetWorth = summary.TotalAssets.Sub(summary.TotalDebts)

	return summary, nil
}
