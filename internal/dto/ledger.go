package dto

import (
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountRequest is the body of a deposit or a withdrawal.
// Positivity of Amount is checked by the ledger, which reports ErrInvalidAmount.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note" binding:"max=255"`
}

// TransferRequest is the body of a transfer between two accounts.
type TransferRequest struct {
	SourceAccountID string          `json:"sourceAccountID" binding:"required"`
	TargetAccountID string          `json:"targetAccountID" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	Note            string          `json:"note" binding:"max=255"`
}

// AccountRefResponse identifies an account touched by a transaction.
type AccountRefResponse struct {
	AccountID string             `json:"accountID"`
	Kind      domain.AccountKind `json:"kind"`
	Label     string             `json:"label"`
}

// TransactionResponse defines the data returned for a ledger record.
// Status is SETTLED or FAILED; a failed record carries the reason in Note.
type TransactionResponse struct {
	TransactionID string                   `json:"transactionID"`
	Type          domain.TransactionType   `json:"type"`
	Status        domain.TransactionStatus `json:"status"`
	Amount        decimal.Decimal          `json:"amount"`
	Currency      domain.Currency          `json:"currency"`
	Note          string                   `json:"note"`
	CreatedAt     time.Time                `json:"createdAt"`
	Source        *AccountRefResponse      `json:"source,omitempty"`
	Target        *AccountRefResponse      `json:"target,omitempty"`
	Summary       string                   `json:"summary"`
}

func toAccountRefResponse(ref *domain.AccountRef) *AccountRefResponse {
	if ref == nil {
		return nil
	}
	return &AccountRefResponse{AccountID: ref.AccountID, Kind: ref.Kind, Label: ref.Label}
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          txn.Type,
		Status:        txn.Status,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Note:          txn.Note,
		CreatedAt:     txn.CreatedAt,
		Source:        toAccountRefResponse(txn.Source),
		Target:        toAccountRefResponse(txn.Target),
		Summary:       txn.Summary(),
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ListTransactionsParams defines query parameters for listing an account's records.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=0,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is one page of records, newest first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}
