package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. The account snapshot
// columns are NULL on the side the operation did not touch.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	Type            string          `db:"transaction_type"` // DEPOSIT, WITHDRAW, TRANSFER
	Status          string          `db:"status"`           // SETTLED, FAILED
	Amount          decimal.Decimal `db:"amount"`
	CurrencyCode    string          `db:"currency_code"`
	Note            string          `db:"note"`
	CreatedAt       time.Time       `db:"created_at"`
	SourceAccountID sql.NullString  `db:"source_account_id"`
	SourceKind      sql.NullString  `db:"source_kind"`
	SourceLabel     sql.NullString  `db:"source_label"`
	TargetAccountID sql.NullString  `db:"target_account_id"`
	TargetKind      sql.NullString  `db:"target_kind"`
	TargetLabel     sql.NullString  `db:"target_label"`
}
