package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_sim/internal/middleware"
	"github.com/shopspring/decimal"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionReader
	clientRepo      portsrepo.ClientReader
	clock           Clock
}

// AccountOption is a functional option for configuring the account service
type AccountOption func(*accountService)

func WithAccountAccessController(ac portssvc.AccessController) AccountOption {
	return func(s *accountService) {
		s.AccessController = ac
	}
}

// WithClock sets the calendar new investment accounts start on.
func WithClock(c Clock) AccountOption {
	return func(s *accountService) {
		s.clock = c
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repos portsrepo.RepositoryProvider, options ...AccountOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo:     repos.AccountRepo,
		transactionRepo: repos.TransactionRepo,
		clientRepo:      repos.ClientRepo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) owner(ctx context.Context) (string, error) {
	if ownerID, ok := middleware.GetClientIDFromCtx(ctx); ok {
		return ownerID, nil
	}
	return "", fmt.Errorf("%w: accounts can only be opened by a signed in client", apperrors.ErrUnauthorized)
}

func (s *accountService) CreateSavingsAccount(ctx context.Context, currency domain.Currency, initialBalance decimal.Decimal) (*domain.Account, error) {
	ownerID, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}
	acc, err := domain.NewSavingsAccount(ownerID, currency, initialBalance)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, acc)
}

func (s *accountService) CreateCreditAccount(ctx context.Context, currency domain.Currency, initialBalance, creditLimit decimal.Decimal) (*domain.Account, error) {
	ownerID, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}
	acc, err := domain.NewCreditAccount(ownerID, currency, initialBalance, creditLimit)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, acc)
}

func (s *accountService) CreateInvestmentAccount(ctx context.Context, currency domain.Currency, initialBalance decimal.Decimal) (*domain.Account, error) {
	ownerID, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}
	if s.clock == nil {
		return nil, fmt.Errorf("investment accounts need a simulated clock")
	}
	acc, err := domain.NewInvestmentAccount(ownerID, currency, initialBalance, s.clock.Today())
	if err != nil {
		return nil, err
	}
	return s.save(ctx, acc)
}

func (s *accountService) save(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
	if err := s.accountRepo.SaveAccount(ctx, *acc); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", acc.AccountID))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	s.LogInfo(ctx, "Account opened",
		slog.String("account_id", acc.AccountID),
		slog.String("kind", string(acc.Kind)),
		slog.String("currency", string(acc.BaseCurrency)))
	return acc, nil
}

func (s *accountService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	acc, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeAccount(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

func (s *accountService) ListAccountsOfClient(ctx context.Context, clientID string) ([]domain.Account, error) {
	if err := s.AuthorizeClient(ctx, clientID); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccountsByOwner(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) ListTransactions(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if _, err := s.GetAccount(ctx, accountID); err != nil {
		return nil, nil, err
	}
	return s.transactionRepo.ListTransactionsByAccountID(ctx, accountID, limit, nextToken)
}

// FindCompatibleAccountsByAlias returns the other client's accounts that can
// receive a third-party transfer in currency.
func (s *accountService) FindCompatibleAccountsByAlias(ctx context.Context, alias string, currency domain.Currency) ([]domain.Account, error) {
	if !currency.IsValid() {
		return nil, fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrValidation, currency)
	}
	client, err := s.clientRepo.FindClientByAlias(ctx, alias)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccountsByOwner(ctx, client.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	compatible := make([]domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		if acc.BaseCurrency == currency {
			compatible = append(compatible, acc)
		}
	}
	return compatible, nil
}
