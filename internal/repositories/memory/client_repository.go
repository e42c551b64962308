package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
)

// ClientRepository stores clients in memory with a case-insensitive alias index.
type ClientRepository struct {
	s *store
}

var _ portsrepo.ClientRepositoryFacade = (*ClientRepository)(nil)

func normalizeAlias(alias string) string {
	return strings.ToLower(strings.TrimSpace(alias))
}

func (r *ClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := normalizeAlias(client.Alias)
	if _, taken := r.s.clientByAlias[key]; taken {
		return fmt.Errorf("%w: alias '%s' is already taken", apperrors.ErrDuplicate, client.Alias)
	}
	if _, exists := r.s.clients[client.ClientID]; exists {
		return fmt.Errorf("%w: client with ID %s already exists", apperrors.ErrDuplicate, client.ClientID)
	}
	if unit := getUnit(ctx); unit != nil {
		unit.recordClient(client.ClientID)
	}
	r.s.clients[client.ClientID] = client
	r.s.clientByAlias[key] = client.ClientID
	return nil
}

func (r *ClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, exists := r.s.clients[clientID]
	if !exists {
		return nil, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
	}
	return &c, nil
}

func (r *ClientRepository) FindClientByAlias(ctx context.Context, alias string) (*domain.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, exists := r.s.clientByAlias[normalizeAlias(alias)]
	if !exists {
		return nil, fmt.Errorf("%w: client with alias '%s'", apperrors.ErrNotFound, alias)
	}
	c := r.s.clients[id]
	return &c, nil
}
