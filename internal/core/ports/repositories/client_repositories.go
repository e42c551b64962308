package repositories

import (
	"context"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a specific client by their ID.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// FindClientByAlias retrieves a client by their unique alias.
	FindClientByAlias(ctx context.Context, alias string) (*domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client. Returns apperrors.ErrDuplicate if the alias is taken.
	SaveClient(ctx context.Context, client domain.Client) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
