package services

import (
	"context"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
)

// TokenSvcFacade issues access tokens for authenticated clients.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, client *domain.Client) (string, time.Time, error)
}

// AccessController decides whether the caller carried by ctx may act on a resource.
type AccessController interface {
	HasAccessToAccount(ctx context.Context, account *domain.Account) bool
	HasAccessToClient(ctx context.Context, clientID string) bool
}
