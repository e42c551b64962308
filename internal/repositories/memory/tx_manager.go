package memory

import (
	"context"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
)

// TxManager gives the in-memory store all-or-nothing units of work.
type TxManager struct {
	s *store
}

var _ portsrepo.TransactionManager = (*TxManager)(nil)

// WithTransaction runs fn and undoes its writes if it fails. A nested call
// joins the unit already carried by ctx.
func (m *TxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if getUnit(ctx) != nil {
		return fn(ctx)
	}

	m.s.units.Lock()
	defer m.s.units.Unlock()

	unit := &unitOfWork{accounts: make(map[string]*domain.Account)}
	if err := fn(context.WithValue(ctx, unitKey{}, unit)); err != nil {
		m.s.rollback(unit)
		return err
	}
	return nil
}
