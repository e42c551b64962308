package services

import (
	"context"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_sim/internal/middleware"
)

// ownerAccessController grants access to a client's own resources only.
// The caller is the client id the auth middleware put into the context.
type ownerAccessController struct{}

// NewAccessController returns the ownership based AccessController.
func NewAccessController() portssvc.AccessController {
	return ownerAccessController{}
}

var _ portssvc.AccessController = ownerAccessController{}

func (ownerAccessController) HasAccessToAccount(ctx context.Context, account *domain.Account) bool {
	if account == nil {
		return false
	}
	clientID, ok := middleware.GetClientIDFromCtx(ctx)
	return ok && clientID == account.OwnerID
}

func (ownerAccessController) HasAccessToClient(ctx context.Context, clientID string) bool {
	caller, ok := middleware.GetClientIDFromCtx(ctx)
	return ok && caller == clientID
}
