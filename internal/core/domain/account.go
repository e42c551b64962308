package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/SscSPs/bank_ledger_sim/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountKind is the behavioral variant of an account. The set is closed:
// every switch over it must handle all three kinds.
type AccountKind string

const (
	KindSavings    AccountKind = "SAVINGS"
	KindCredit     AccountKind = "CREDIT"
	KindInvestment AccountKind = "INVESTMENT"
)

// IsValid reports whether k is one of the known account kinds.
func (k AccountKind) IsValid() bool {
	switch k {
	case KindSavings, KindCredit, KindInvestment:
		return true
	}
	return false
}

// Label names the kind without any balance or limit details.
func (k AccountKind) Label() string {
	switch k {
	case KindSavings:
		return "Savings Account"
	case KindCredit:
		return "Credit Account"
	case KindInvestment:
		return "Investment Account"
	default:
		return "Unknown Account"
	}
}

// Account represents a client's account within the core domain.
// Variant specific fields are only meaningful for their kind.
type Account struct {
	AccountID    string          `json:"accountID"`    // Primary Key (UUID), immutable
	OwnerID      string          `json:"ownerID"`      // FK -> clients.client_id
	Kind         AccountKind     `json:"kind"`         // SAVINGS, CREDIT, INVESTMENT
	BaseCurrency Currency        `json:"baseCurrency"` // Fixed at creation
	Balance      decimal.Decimal `json:"balance"`

	// CREDIT only: how far below zero the balance may go.
	CreditLimit decimal.Decimal `json:"creditLimit"`

	// INVESTMENT only.
	History        []InvestmentHistory `json:"history,omitempty"`
	LastUpdateDate time.Time           `json:"lastUpdateDate"`

	AuditFields
}

func newAccount(kind AccountKind, ownerID string, currency Currency, initialBalance decimal.Decimal) (*Account, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: account owner is required", apperrors.ErrInvalidArgument)
	}
	if !currency.IsValid() {
		return nil, fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrInvalidArgument, currency)
	}
	if initialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", apperrors.ErrInvalidAmount)
	}
	now := time.Now().UTC()
	return &Account{
		AccountID:    uuid.NewString(),
		OwnerID:      ownerID,
		Kind:         kind,
		BaseCurrency: currency,
		Balance:      initialBalance,
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}, nil
}

// NewSavingsAccount creates an account whose balance can never go negative.
func NewSavingsAccount(ownerID string, currency Currency, initialBalance decimal.Decimal) (*Account, error) {
	return newAccount(KindSavings, ownerID, currency, initialBalance)
}

// NewCreditAccount creates an account that may go negative down to -creditLimit.
func NewCreditAccount(ownerID string, currency Currency, initialBalance, creditLimit decimal.Decimal) (*Account, error) {
	if creditLimit.IsNegative() {
		return nil, fmt.Errorf("%w: credit limit cannot be negative", apperrors.ErrInvalidAmount)
	}
	acc, err := newAccount(KindCredit, ownerID, currency, initialBalance)
	if err != nil {
		return nil, err
	}
	acc.CreditLimit = creditLimit
	return acc, nil
}

// NewInvestmentAccount creates a return-bearing account. openedOn becomes the
// last update date, so the first sweep that can touch it is the following day.
func NewInvestmentAccount(ownerID string, currency Currency, initialBalance decimal.Decimal, openedOn time.Time) (*Account, error) {
	if openedOn.IsZero() {
		return nil, fmt.Errorf("%w: opening date is required", apperrors.ErrInvalidArgument)
	}
	acc, err := newAccount(KindInvestment, ownerID, currency, initialBalance)
	if err != nil {
		return nil, err
	}
	acc.LastUpdateDate = DateOf(openedOn)
	acc.History = []InvestmentHistory{}
	return acc, nil
}

// Credit increases the balance. No kind ever rejects a positive credit.
func (a *Account) Credit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}

// Debit decreases the balance if the kind's sufficiency rule allows it.
func (a *Account) Debit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.ErrInvalidAmount
	}
	if !a.HasSufficientFunds(amount) {
		return apperrors.ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

// HasSufficientFunds applies the per-kind sufficiency rule.
func (a *Account) HasSufficientFunds(amount decimal.Decimal) bool {
	switch a.Kind {
	case KindSavings, KindInvestment:
		return a.Balance.GreaterThanOrEqual(amount)
	case KindCredit:
		return a.Balance.Sub(amount).GreaterThanOrEqual(a.CreditLimit.Neg())
	default:
		return false
	}
}

// TypeLabel is the human readable description of the account kind.
func (a *Account) TypeLabel() string {
	if a.Kind == KindCredit {
		return fmt.Sprintf("%s (Limit: %s)", a.Kind.Label(), utils.FormatWithSymbol(a.BaseCurrency.Symbol(), a.CreditLimit))
	}
	return a.Kind.Label()
}

// SameAs compares accounts by identity only.
func (a *Account) SameAs(other *Account) bool {
	return other != nil && a.AccountID == other.AccountID
}

// IsInvestment reports whether the account bears daily returns.
func (a *Account) IsInvestment() bool {
	return a.Kind == KindInvestment
}

// Ref snapshots the account's identity and label for transaction records.
func (a *Account) Ref() *AccountRef {
	return &AccountRef{AccountID: a.AccountID, Kind: a.Kind, Label: a.TypeLabel()}
}

// Touch stamps the update audit fields.
func (a *Account) Touch(by string, at time.Time) {
	a.LastUpdatedAt = at
	a.LastUpdatedBy = by
}

// Clone returns a deep copy so stores never share history slices with callers.
func (a *Account) Clone() *Account {
	cp := *a
	if a.History != nil {
		cp.History = make([]InvestmentHistory, len(a.History))
		copy(cp.History, a.History)
	}
	return &cp
}

func (a *Account) String() string {
	return fmt.Sprintf("%s - %s", a.TypeLabel(), utils.FormatWithSymbol(a.BaseCurrency.Symbol(), a.Balance))
}
