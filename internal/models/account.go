package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table.
type Account struct {
	AccountID      string          `db:"account_id"`
	OwnerID        string          `db:"owner_id"`
	Kind           string          `db:"kind"` // SAVINGS, CREDIT, INVESTMENT
	BaseCurrency   string          `db:"base_currency"`
	Balance        decimal.Decimal `db:"balance"`
	CreditLimit    decimal.Decimal `db:"credit_limit"`
	LastUpdateDate sql.NullTime    `db:"last_update_date"` // Investment accounts only
	AuditFields
}

// InvestmentHistory is a row of the investment_history table, one per
// account and simulated day.
type InvestmentHistory struct {
	AccountID     string          `db:"account_id"`
	Date          time.Time       `db:"history_date"`
	DailyRate     decimal.Decimal `db:"daily_rate"`
	BalanceBefore decimal.Decimal `db:"balance_before"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
}
