package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// investmentService implements the InvestmentSvcFacade interface
type investmentService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	txManager   portsrepo.TransactionManager
	clock       Clock
	market      *MarketSimulator
	locker      *AccountLocker
}

// InvestmentOption is a functional option for configuring the investment service
type InvestmentOption func(*investmentService)

func WithInvestmentAccessController(ac portssvc.AccessController) InvestmentOption {
	return func(s *investmentService) {
		s.AccessController = ac
	}
}

func WithInvestmentAccountLocker(l *AccountLocker) InvestmentOption {
	return func(s *investmentService) {
		s.locker = l
	}
}

// NewInvestmentService creates the service that compounds investment accounts.
func NewInvestmentService(repos portsrepo.RepositoryProvider, clock Clock, market *MarketSimulator, options ...InvestmentOption) portssvc.InvestmentSvcFacade {
	svc := &investmentService{
		accountRepo: repos.AccountRepo,
		txManager:   repos.TxManager,
		clock:       clock,
		market:      market,
		locker:      NewAccountLocker(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

func (s *investmentService) Today() time.Time {
	return s.clock.Today()
}

// UpdateAllInvestmentAccountsInSystem applies one rate to every investment
// account not yet updated for date. An account that fails to update is logged
// and counted; the sweep carries on with the rest.
func (s *investmentService) UpdateAllInvestmentAccountsInSystem(ctx context.Context, date time.Time, rate decimal.Decimal) (*domain.SweepResult, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: sweep date is required", apperrors.ErrInvalidArgument)
	}
	if rate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return nil, fmt.Errorf("%w: daily rate %s would wipe out every balance", apperrors.ErrInvalidArgument, rate)
	}
	day := domain.DateOf(date)

	accounts, err := s.accountRepo.FindAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for sweep")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	result := &domain.SweepResult{Date: day, Rate: rate}
	for i := range accounts {
		acc := &accounts[i]
		if !acc.IsInvestment() {
			continue
		}
		if !acc.NeedsUpdateFor(day) {
			result.Skipped++
			continue
		}

		updated, err := s.applyReturn(ctx, acc.AccountID, rate, day)
		if err != nil {
			result.Failures++
			s.LogError(ctx, err, "Failed to apply daily return", slog.String("account_id", acc.AccountID))
			continue
		}
		if updated {
			result.Updated++
		} else {
			result.Skipped++
		}
	}

	s.LogInfo(ctx, "Investment sweep finished",
		slog.String("date", day.Format(time.DateOnly)),
		slog.String("rate", rate.String()),
		slog.Int("updated", result.Updated),
		slog.Int("skipped", result.Skipped),
		slog.Int("failures", result.Failures))

	return result, nil
}

// applyReturn rechecks the account under its lock, since a concurrent sweep
// may already have handled the day.
func (s *investmentService) applyReturn(ctx context.Context, accountID string, rate decimal.Decimal, day time.Time) (bool, error) {
	unlock := s.locker.Lock(accountID)
	defer unlock()

	updated := false
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		locked, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, []string{accountID})
		if err != nil {
			return err
		}
		acc := locked[accountID]
		// Empty or overdrawn accounts earn nothing and keep their last update date.
		if !acc.NeedsUpdateFor(day) || !acc.Balance.IsPositive() {
			return nil
		}
		if err := acc.ApplyDailyReturn(rate, day); err != nil {
			return err
		}
		// recorded as a system change even when a client triggered the sweep
		acc.Touch(SystemActor, time.Now().UTC())
		if err := s.accountRepo.UpdateAccount(ctx, acc); err != nil {
			return err
		}
		updated = true
		return nil
	})
	return updated, err
}

func (s *investmentService) AdvanceDay(ctx context.Context) (*domain.SweepResult, error) {
	day := s.clock.AdvanceOneDay()
	rate := s.market.GenerateDailyRate()
	s.LogInfo(ctx, "Simulated day advanced",
		slog.String("date", day.Format(time.DateOnly)),
		slog.String("rate", rate.String()))
	return s.UpdateAllInvestmentAccountsInSystem(ctx, day, rate)
}

func (s *investmentService) GetInvestmentReport(ctx context.Context, accountID string) (*domain.InvestmentReport, error) {
	acc, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeAccount(ctx, acc); err != nil {
		return nil, err
	}
	if !acc.IsInvestment() {
		return nil, fmt.Errorf("%w: account %s is not an investment account", apperrors.ErrInvalidArgument, accountID)
	}
	report := domain.NewInvestmentReport(acc)
	return &report, nil
}
