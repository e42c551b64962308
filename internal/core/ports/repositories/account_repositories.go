package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
)

// AccountReader defines read operations for account data.
// Every returned account is a copy; mutations reach the store only through AccountWriter.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	// Returns apperrors.ErrNotFound when no such account exists.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountsByOwner retrieves every account owned by a client, oldest first.
	ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error)

	// FindAll retrieves every account in the system, oldest first.
	FindAll(ctx context.Context) ([]domain.Account, error)

	// LatestInvestmentUpdate returns the most recent LastUpdateDate over all
	// investment accounts, or the zero time when there are none.
	LatestInvestmentUpdate(ctx context.Context) (time.Time, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount replaces the stored state of an existing account:
	// balance, investment history and last update date.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountTransactionSupport defines operations that support account transactions
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate loads accounts and locks them until the
	// surrounding unit of work ends. Missing ids yield apperrors.ErrNotFound.
	FindAccountsByIDsForUpdate(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
