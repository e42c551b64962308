package services

import (
	"context"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
)

// TransactionEventPublisher announces recorded transactions to other systems.
type TransactionEventPublisher interface {
	PublishTransactionRecorded(ctx context.Context, transaction domain.Transaction) error
	Close() error
}
