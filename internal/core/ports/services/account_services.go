package services

import (
	"context"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccount retrieves an account the caller has access to.
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountsOfClient retrieves every account of a client the caller has access to.
	ListAccountsOfClient(ctx context.Context, clientID string) ([]domain.Account, error)

	// ListTransactions retrieves an account's records newest first.
	ListTransactions(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// FindCompatibleAccountsByAlias lists another client's accounts in the given
	// currency, the candidates for a third-party transfer.
	FindCompatibleAccountsByAlias(ctx context.Context, alias string, currency domain.Currency) ([]domain.Account, error)
}

// AccountWriterSvc defines account opening operations. The owner is always the caller.
type AccountWriterSvc interface {
	CreateSavingsAccount(ctx context.Context, currency domain.Currency, initialBalance decimal.Decimal) (*domain.Account, error)
	CreateCreditAccount(ctx context.Context, currency domain.Currency, initialBalance, creditLimit decimal.Decimal) (*domain.Account, error)
	CreateInvestmentAccount(ctx context.Context, currency domain.Currency, initialBalance decimal.Decimal) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
