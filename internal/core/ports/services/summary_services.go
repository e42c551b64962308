package services

import (
	"context"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
)

// SummarySvcFacade reports a client's position in a single currency.
type SummarySvcFacade interface {
	// CalculateAssetsAndDebts converts every balance of the client into currency.
	// Non-negative balances count as assets, negative ones as debts.
	CalculateAssetsAndDebts(ctx context.Context, clientID string, currency domain.Currency) (*domain.AssetsAndDebts, error)

	// GetClientSummary adds the per-account breakdown to the totals.
	GetClientSummary(ctx context.Context, clientID string, currency domain.Currency) (*domain.ClientSummary, error)
}
