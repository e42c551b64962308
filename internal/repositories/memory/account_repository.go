package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
)

// AccountRepository stores accounts in memory. Callers always receive copies.
type AccountRepository struct {
	s *store
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.accounts[account.AccountID]; exists {
		return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, account.AccountID)
	}
	if unit := getUnit(ctx); unit != nil {
		unit.recordAccount(account.AccountID, nil)
	}
	r.s.accounts[account.AccountID] = account.Clone()
	r.s.accountOrder = append(r.s.accountOrder, account.AccountID)
	return nil
}

func (r *AccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, exists := r.s.accounts[account.AccountID]
	if !exists {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, account.AccountID)
	}
	if unit := getUnit(ctx); unit != nil {
		unit.recordAccount(account.AccountID, current)
	}

	updated := current.Clone()
	updated.Balance = account.Balance
	updated.History = account.Clone().History
	updated.LastUpdateDate = account.LastUpdateDate
	updated.LastUpdatedAt = account.LastUpdatedAt
	updated.LastUpdatedBy = account.LastUpdatedBy
	r.s.accounts[account.AccountID] = updated
	return nil
}

func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	acc, exists := r.s.accounts[accountID]
	if !exists {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return acc.Clone(), nil
}

func (r *AccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		acc, exists := r.s.accounts[id]
		if !exists {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		out[id] = *acc.Clone()
	}
	return out, nil
}

func (r *AccountRepository) LatestInvestmentUpdate(ctx context.Context) (time.Time, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var latest time.Time
	for _, acc := range r.s.accounts {
		if acc.Kind == domain.KindInvestment && acc.LastUpdateDate.After(latest) {
			latest = acc.LastUpdateDate
		}
	}
	return latest, nil
}

func (r *AccountRepository) ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Account, 0)
	for _, id := range r.s.accountOrder {
		if acc := r.s.accounts[id]; acc.OwnerID == ownerID {
			out = append(out, *acc.Clone())
		}
	}
	return out, nil
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Account, 0, len(r.s.accountOrder))
	for _, id := range r.s.accountOrder {
		out = append(out, *r.s.accounts[id].Clone())
	}
	return out, nil
}
