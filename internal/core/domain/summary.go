package domain

import (
	"github.com/shopspring/decimal"
)

// AssetsAndDebts is a client's position with every balance converted into one
// currency. Debts are reported as a positive amount.
type AssetsAndDebts struct {
	ClientID    string          `json:"clientID"`
	Currency    Currency        `json:"currency"`
	TotalAssets decimal.Decimal `json:"totalAssets"`
	TotalDebts  decimal.Decimal `json:"totalDebts"`
	NetWorth    decimal.Decimal `json:"netWorth"`
}

// AccountBalance is one line of a client's summary, already converted.
type AccountBalance struct {
	AccountID        string          `json:"accountID"`
	Label            string          `json:"label"`
	BaseCurrency     Currency        `json:"baseCurrency"`
	Balance          decimal.Decimal `json:"balance"`
	ConvertedBalance decimal.Decimal `json:"convertedBalance"`
}

// ClientSummary bundles the totals with the per-account breakdown.
type ClientSummary struct {
	AssetsAndDebts
	Accounts []AccountBalance `json:"accounts"`
}
