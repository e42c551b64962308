package dto

import (
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	"github.com/SscSPs/bank_ledger_sim/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a new account.
// CreditLimit is only read for CREDIT accounts.
type CreateAccountRequest struct {
	Kind           domain.AccountKind `json:"kind" binding:"required,oneof=SAVINGS CREDIT INVESTMENT"`
	Currency       domain.Currency    `json:"currency" binding:"required,currency"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	CreditLimit    decimal.Decimal    `json:"creditLimit"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID        string             `json:"accountID"`
	OwnerID          string             `json:"ownerID"`
	Kind             domain.AccountKind `json:"kind"`
	Label            string             `json:"label"`
	Currency         domain.Currency    `json:"currency"`
	Balance          decimal.Decimal    `json:"balance"`
	FormattedBalance string             `json:"formattedBalance"`
	CreditLimit      *decimal.Decimal   `json:"creditLimit,omitempty"`
	LastUpdateDate   *time.Time         `json:"lastUpdateDate,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	LastUpdatedAt    time.Time          `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	res := AccountResponse{
		AccountID:        acc.AccountID,
		OwnerID:          acc.OwnerID,
		Kind:             acc.Kind,
		Label:            acc.TypeLabel(),
		Currency:         acc.BaseCurrency,
		Balance:          acc.Balance,
		FormattedBalance: utils.FormatWithSymbol(acc.BaseCurrency.Symbol(), acc.Balance),
		CreatedAt:        acc.CreatedAt,
		LastUpdatedAt:    acc.LastUpdatedAt,
	}
	switch acc.Kind {
	case domain.KindCredit:
		limit := acc.CreditLimit
		res.CreditLimit = &limit
	case domain.KindInvestment:
		date := acc.LastUpdateDate
		res.LastUpdateDate = &date
	}
	return res
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsResponse wraps the accounts of a client.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// PayeeAccountResponse is what a client may see of another client's account:
// enough to address a transfer, nothing about its funds.
type PayeeAccountResponse struct {
	AccountID string             `json:"accountID"`
	Kind      domain.AccountKind `json:"kind"`
	Label     string             `json:"label"`
	Currency  domain.Currency    `json:"currency"`
}

// ToPayeeAccountResponses converts another client's accounts to PayeeAccountResponse DTOs
func ToPayeeAccountResponses(accounts []domain.Account) []PayeeAccountResponse {
	res := make([]PayeeAccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = PayeeAccountResponse{
			AccountID: acc.AccountID,
			Kind:      acc.Kind,
			Label:     acc.Kind.Label(),
			Currency:  acc.BaseCurrency,
		}
	}
	return res
}

// ListPayeeAccountsResponse wraps the accounts another client can receive into.
type ListPayeeAccountsResponse struct {
	Accounts []PayeeAccountResponse `json:"accounts"`
}

// CompatibleAccountsParams selects which of another client's accounts to list.
type CompatibleAccountsParams struct {
	Currency domain.Currency `form:"currency" binding:"required,currency"`
}
