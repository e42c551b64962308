package mapping

import (
	"database/sql"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	"github.com/SscSPs/bank_ledger_sim/internal/models"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID: d.TransactionID,
		Type:          string(d.Type),
		Status:        string(d.Status),
		Amount:        d.Amount,
		CurrencyCode:  string(d.Currency),
		Note:          d.Note,
		CreatedAt:     d.CreatedAt,
	}
	if d.Source != nil {
		m.SourceAccountID = nullString(d.Source.AccountID)
		m.SourceKind = nullString(string(d.Source.Kind))
		m.SourceLabel = nullString(d.Source.Label)
	}
	if d.Target != nil {
		m.TargetAccountID = nullString(d.Target.AccountID)
		m.TargetKind = nullString(string(d.Target.Kind))
		m.TargetLabel = nullString(d.Target.Label)
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		Type:          domain.TransactionType(m.Type),
		Status:        domain.TransactionStatus(m.Status),
		Amount:        m.Amount,
		Currency:      domain.Currency(m.CurrencyCode),
		Note:          m.Note,
		CreatedAt:     m.CreatedAt,
	}
	if m.SourceAccountID.Valid {
		d.Source = &domain.AccountRef{
			AccountID: m.SourceAccountID.String,
			Kind:      domain.AccountKind(m.SourceKind.String),
			Label:     m.SourceLabel.String,
		}
	}
	if m.TargetAccountID.Valid {
		d.Target = &domain.AccountRef{
			AccountID: m.TargetAccountID.String,
			Kind:      domain.AccountKind(m.TargetKind.String),
			Label:     m.TargetLabel.String,
		}
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
