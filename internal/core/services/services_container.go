package services

import (
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_sim/internal/platform/config"
)

// Dependencies are the non-repository collaborators the services share.
type Dependencies struct {
	Rates     *domain.RateTable
	Clock     Clock
	Market    *MarketSimulator
	Publisher portssvc.TransactionEventPublisher
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, deps Dependencies) *portssvc.ServiceContainer {
	access := NewAccessController()

	// Ledger and investment services mutate balances, so they share one locker.
	locker := NewAccountLocker()

	ledgerOpts := []LedgerOption{
		WithLedgerAccessController(access),
		WithAccountLocker(locker),
	}
	if deps.Publisher != nil {
		ledgerOpts = append(ledgerOpts, WithEventPublisher(deps.Publisher))
	}

	return &portssvc.ServiceContainer{
		Ledger: NewLedgerService(repos, deps.Rates, ledgerOpts...),
		Account: NewAccountService(repos,
			WithAccountAccessController(access),
			WithClock(deps.Clock),
		),
		Investment: NewInvestmentService(repos, deps.Clock, deps.Market,
			WithInvestmentAccessController(access),
			WithInvestmentAccountLocker(locker),
		),
		Conversion: NewConversionService(deps.Rates),
		Summary:    NewSummaryService(repos.AccountRepo, deps.Rates, access),
		Client:     NewClientService(repos.ClientRepo),
		Token:      NewTokenService(cfg),
	}
}
