package repositories

import (
	"context"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
)

// TransactionReader defines read operations for transaction records
type TransactionReader interface {
	// FindTransactionByID retrieves a single record by its identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccountID retrieves the records involving an account,
	// newest first, using token-based pagination. A limit <= 0 returns everything.
	// It returns the records, a token for the next page, and an error.
	ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transaction records
type TransactionWriter interface {
	// SaveTransaction persists a record and indexes it under every involved account.
	SaveTransaction(ctx context.Context, transaction domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
