package services_test

import (
	"context"
	"errors"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger_sim/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func asClient(clientID string) context.Context {
	return middleware.WithClientID(context.Background(), clientID)
}

// MockEventPublisher is a mock type for the TransactionEventPublisher interface
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishTransactionRecorded(ctx context.Context, transaction domain.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// failingAccountRepo fails every UpdateAccount for one account id.
type failingAccountRepo struct {
	portsrepo.AccountRepositoryFacade
	failID string
}

var errStoreDown = errors.New("store unavailable")

func (r *failingAccountRepo) UpdateAccount(ctx context.Context, account domain.Account) error {
	if account.AccountID == r.failID {
		return errStoreDown
	}
	return r.AccountRepositoryFacade.UpdateAccount(ctx, account)
}

// sequenceSource replays fixed draws, then repeats the last one.
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.next]
	if s.next < len(s.values)-1 {
		s.next++
	}
	return v
}
