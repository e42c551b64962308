package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the kind of money movement a record describes.
type TransactionType string

const (
	Deposit  TransactionType = "DEPOSIT"
	Withdraw TransactionType = "WITHDRAW"
	Transfer TransactionType = "TRANSFER"
)

// Description is the display name used in summaries.
func (t TransactionType) Description() string {
	switch t {
	case Deposit:
		return "Deposit"
	case Withdraw:
		return "Withdrawal"
	case Transfer:
		return "Transfer"
	default:
		return string(t)
	}
}

// TransactionStatus is the outcome of a ledger operation.
type TransactionStatus string

const (
	StatusSettled TransactionStatus = "SETTLED"
	StatusFailed  TransactionStatus = "FAILED"
)

func (s TransactionStatus) Description() string {
	switch s {
	case StatusSettled:
		return "Settled"
	case StatusFailed:
		return "Failed"
	default:
		return string(s)
	}
}

// AccountRef is a snapshot of the account a transaction touched.
type AccountRef struct {
	AccountID string      `json:"accountID"`
	Kind      AccountKind `json:"kind"`
	Label     string      `json:"label"`
}

// Transaction is the immutable record of one ledger operation.
// Deposit sets Target, Withdraw sets Source, Transfer sets both.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (UUID)
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Amount        decimal.Decimal   `json:"amount"`   // As requested, in Currency
	Currency      Currency          `json:"currency"` // Source account's currency for transfers
	CreatedAt     time.Time         `json:"createdAt"`
	Note          string            `json:"note,omitempty"`
	Source        *AccountRef       `json:"source,omitempty"`
	Target        *AccountRef       `json:"target,omitempty"`
}

func newTransaction(txType TransactionType, amount decimal.Decimal, currency Currency, status TransactionStatus, note string) Transaction {
	return Transaction{
		TransactionID: uuid.NewString(),
		Type:          txType,
		Status:        status,
		Amount:        amount,
		Currency:      currency,
		CreatedAt:     time.Now().UTC(),
		Note:          note,
	}
}

func NewDepositTransaction(target *Account, amount decimal.Decimal, currency Currency, status TransactionStatus, note string) Transaction {
	tx := newTransaction(Deposit, amount, currency, status, note)
	tx.Target = target.Ref()
	return tx
}

func NewWithdrawTransaction(source *Account, amount decimal.Decimal, currency Currency, status TransactionStatus, note string) Transaction {
	tx := newTransaction(Withdraw, amount, currency, status, note)
	tx.Source = source.Ref()
	return tx
}

func NewTransferTransaction(source, target *Account, amount decimal.Decimal, currency Currency, status TransactionStatus, note string) Transaction {
	tx := newTransaction(Transfer, amount, currency, status, note)
	tx.Source = source.Ref()
	tx.Target = target.Ref()
	return tx
}

// IsSuccessful reports whether the movement was applied.
func (t Transaction) IsSuccessful() bool {
	return t.Status == StatusSettled
}

// InvolvedAccountIDs lists every account the record must be indexed under.
func (t Transaction) InvolvedAccountIDs() []string {
	ids := make([]string, 0, 2)
	if t.Source != nil {
		ids = append(ids, t.Source.AccountID)
	}
	if t.Target != nil && (t.Source == nil || t.Target.AccountID != t.Source.AccountID) {
		ids = append(ids, t.Target.AccountID)
	}
	return ids
}

func (t Transaction) InvolvesAccount(accountID string) bool {
	for _, id := range t.InvolvedAccountIDs() {
		if id == accountID {
			return true
		}
	}
	return false
}

// Summary renders a one line, human readable description of the record.
func (t Transaction) Summary() string {
	amount := t.Currency.Symbol() + utils.FormatWithPrecision(t.Amount, 2)
	note := t.Note
	if note == "" {
		note = "No note"
	}

	var movement string
	switch t.Type {
	case Deposit:
		movement = fmt.Sprintf("+%s → %s", amount, refLabel(t.Target))
	case Withdraw:
		movement = fmt.Sprintf("-%s from %s", amount, refLabel(t.Source))
	case Transfer:
		movement = fmt.Sprintf("%s from %s → %s", amount, refLabel(t.Source), refLabel(t.Target))
	default:
		movement = amount
	}

	return fmt.Sprintf("[%s] %s: %s | %s | %s",
		t.CreatedAt.Format("02/01/2006 15:04:05"),
		t.Type.Description(),
		movement,
		t.Status.Description(),
		note)
}

func refLabel(ref *AccountRef) string {
	if ref == nil {
		return "?"
	}
	return ref.Label
}
