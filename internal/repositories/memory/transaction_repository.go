package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger_sim/internal/utils/pagination"
)

// TransactionRepository stores transaction records in memory, indexed by account.
type TransactionRepository struct {
	s *store
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.transactions[transaction.TransactionID]; exists {
		return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, transaction.TransactionID)
	}
	if unit := getUnit(ctx); unit != nil {
		unit.recordTransaction(transaction.TransactionID)
	}
	r.s.transactions[transaction.TransactionID] = transaction
	for _, accountID := range transaction.InvolvedAccountIDs() {
		r.s.byAccount[accountID] = append(r.s.byAccount[accountID], transaction.TransactionID)
	}
	return nil
}

func (r *TransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	tx, exists := r.s.transactions[transactionID]
	if !exists {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return &tx, nil
}

// ListTransactionsByAccountID walks the account's index backwards, so records
// come out in reverse insertion order.
func (r *TransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &c
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := r.s.byAccount[accountID]
	out := make([]domain.Transaction, 0)
	start := len(ids) - 1
	if cursor != nil {
		// Resume right after the cursor's record.
		for start >= 0 && ids[start] != cursor.ID {
			start--
		}
		start--
	}
	for i := start; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			last := out[len(out)-1]
			token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
			return out, &token, nil
		}
		out = append(out, r.s.transactions[ids[i]])
	}
	return out, nil, nil
}
