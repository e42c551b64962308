package services

import (
	"context"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvestmentSvcFacade drives daily compounding of investment accounts.
type InvestmentSvcFacade interface {
	// UpdateAllInvestmentAccountsInSystem applies rate to every investment
	// account whose last update is strictly before date.
	UpdateAllInvestmentAccountsInSystem(ctx context.Context, date time.Time, rate decimal.Decimal) (*domain.SweepResult, error)

	// AdvanceDay moves the simulated clock forward one day, draws a market
	// rate and sweeps every investment account with it.
	AdvanceDay(ctx context.Context) (*domain.SweepResult, error)

	// GetInvestmentReport summarises the performance of an investment account.
	GetInvestmentReport(ctx context.Context, accountID string) (*domain.InvestmentReport, error)

	// Today returns the simulated current day.
	Today() time.Time
}
