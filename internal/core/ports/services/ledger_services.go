package services

import (
	"context"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade moves money between accounts and records the outcome.
//
// Validation failures (access denied, non-positive amount, same account,
// currency mismatch, unknown account) return an error and record nothing.
// Past validation, exactly one record is saved and returned: SETTLED when the
// movement applied, FAILED with an "Error: <reason>" note otherwise.
type LedgerSvcFacade interface {
	// Deposit credits the target account.
	Deposit(ctx context.Context, targetID string, amount decimal.Decimal, note string) (*domain.Transaction, error)

	// Withdraw debits the source account under its sufficiency rule.
	Withdraw(ctx context.Context, sourceID string, amount decimal.Decimal, note string) (*domain.Transaction, error)

	// Transfer moves amount between two accounts the caller can access,
	// converting it into the target's currency when they differ.
	Transfer(ctx context.Context, sourceID, targetID string, amount decimal.Decimal, note string) (*domain.Transaction, error)

	// TransferToThirdParty moves amount to an account of another client.
	// Only the source needs to be accessible and currencies must match.
	TransferToThirdParty(ctx context.Context, sourceID, targetID string, amount decimal.Decimal, note string) (*domain.Transaction, error)
}
