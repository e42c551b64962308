package services

import (
	"context"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	GetClientByAlias(ctx context.Context, alias string) (*domain.Client, error)
}

// ClientWriterSvc defines client registration.
type ClientWriterSvc interface {
	// CreateClient registers a client with a unique alias and a 4 digit PIN.
	CreateClient(ctx context.Context, name, alias, pin string) (*domain.Client, error)
}

// ClientAuthSvc defines client authentication.
type ClientAuthSvc interface {
	// Authenticate returns the client when alias and PIN match, apperrors.ErrUnauthorized otherwise.
	Authenticate(ctx context.Context, alias, pin string) (*domain.Client, error)
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
	ClientAuthSvc
}
