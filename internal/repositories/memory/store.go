package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
)

// store is the shared state behind every in-memory repository.
// Repositories are thin views over it so a unit of work can undo writes
// that span accounts and transactions.
type store struct {
	mu sync.RWMutex

	accounts     map[string]*domain.Account
	accountOrder []string

	transactions map[string]domain.Transaction
	// byAccount indexes transaction ids under every involved account, in insertion order.
	byAccount map[string][]string

	clients       map[string]domain.Client
	clientByAlias map[string]string

	// units serialises units of work so rollbacks never interleave.
	units sync.Mutex
}

func newStore() *store {
	return &store{
		accounts:      make(map[string]*domain.Account),
		transactions:  make(map[string]domain.Transaction),
		byAccount:     make(map[string][]string),
		clients:       make(map[string]domain.Client),
		clientByAlias: make(map[string]string),
	}
}

// NewRepositoryProvider builds repositories that share one in-memory store.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	s := newStore()
	return portsrepo.RepositoryProvider{
		AccountRepo:     &AccountRepository{s: s},
		TransactionRepo: &TransactionRepository{s: s},
		ClientRepo:      &ClientRepository{s: s},
		TxManager:       &TxManager{s: s},
	}
}

type unitKey struct{}

// unitOfWork remembers how to undo the writes made inside WithTransaction.
type unitOfWork struct {
	mu sync.Mutex
	// accounts holds the state before the first write; nil marks an account created in the unit.
	accounts     map[string]*domain.Account
	transactions []string
	clients      []string
}

func getUnit(ctx context.Context) *unitOfWork {
	u, _ := ctx.Value(unitKey{}).(*unitOfWork)
	return u
}

// recordAccount must be called with s.mu held, before the account changes.
func (u *unitOfWork) recordAccount(id string, before *domain.Account) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, seen := u.accounts[id]; seen {
		return
	}
	if before != nil {
		before = before.Clone()
	}
	u.accounts[id] = before
}

func (u *unitOfWork) recordTransaction(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.transactions = append(u.transactions, id)
}

func (u *unitOfWork) recordClient(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.clients = append(u.clients, id)
}

func (s *store) rollback(u *unitOfWork) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, before := range u.accounts {
		if before == nil {
			delete(s.accounts, id)
			s.accountOrder = removeID(s.accountOrder, id)
			continue
		}
		s.accounts[id] = before
	}

	for _, txID := range u.transactions {
		tx, ok := s.transactions[txID]
		if !ok {
			continue
		}
		delete(s.transactions, txID)
		for _, accountID := range tx.InvolvedAccountIDs() {
			s.byAccount[accountID] = removeID(s.byAccount[accountID], txID)
		}
	}

	for _, clientID := range u.clients {
		if c, ok := s.clients[clientID]; ok {
			delete(s.clientByAlias, normalizeAlias(c.Alias))
			delete(s.clients, clientID)
		}
	}
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
