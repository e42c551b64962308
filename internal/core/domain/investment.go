package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/shopspring/decimal"
)

// InvestmentHistory is one immutable compounding record of an investment account.
type InvestmentHistory struct {
	Date          time.Time       `json:"date"`
	DailyRate     decimal.Decimal `json:"dailyRate"`
	BalanceBefore decimal.Decimal `json:"balanceBefore"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
}

// Profit is BalanceAfter - BalanceBefore; negative on a losing day.
func (h InvestmentHistory) Profit() decimal.Decimal {
	return h.BalanceAfter.Sub(h.BalanceBefore)
}

func (h InvestmentHistory) IsBullish() bool {
	return h.Profit().IsPositive()
}

func (h InvestmentHistory) IsBearish() bool {
	return h.Profit().IsNegative()
}

// ApplyDailyReturn compounds the balance by (1 + rate), rounded to cents.
// Nothing happens when the balance is not positive. Calling it twice for the
// same date compounds twice; callers must apply at most once per day.
func (a *Account) ApplyDailyReturn(rate decimal.Decimal, date time.Time) error {
	if a.Kind != KindInvestment {
		return fmt.Errorf("%w: account %s does not bear returns", apperrors.ErrInvalidArgument, a.AccountID)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrInvalidArgument)
	}
	one := decimal.NewFromInt(1)
	if rate.LessThanOrEqual(one.Neg()) {
		return fmt.Errorf("%w: daily rate %s would wipe out the balance", apperrors.ErrInvalidArgument, rate)
	}
	if !a.Balance.IsPositive() {
		return nil
	}

	before := a.Balance
	a.Balance = before.Mul(one.Add(rate)).Round(2)
	a.History = append(a.History, InvestmentHistory{
		Date:          DateOf(date),
		DailyRate:     rate,
		BalanceBefore: before,
		BalanceAfter:  a.Balance,
	})
	a.LastUpdateDate = DateOf(date)
	return nil
}

// NeedsUpdateFor reports whether a sweep for date should still touch the account.
func (a *Account) NeedsUpdateFor(date time.Time) bool {
	return a.Kind == KindInvestment && a.LastUpdateDate.Before(DateOf(date))
}

// TotalReturn sums the profit of every recorded day.
func (a *Account) TotalReturn() decimal.Decimal {
	total := decimal.Zero
	for _, h := range a.History {
		total = total.Add(h.Profit())
	}
	return total
}

// BullishDays counts days that ended with a gain.
func (a *Account) BullishDays() int {
	count := 0
	for _, h := range a.History {
		if h.IsBullish() {
			count++
		}
	}
	return count
}

// BearishDays counts days that ended with a loss.
func (a *Account) BearishDays() int {
	count := 0
	for _, h := range a.History {
		if h.IsBearish() {
			count++
		}
	}
	return count
}

// InvestmentReport is the read-side view of an investment account's performance.
type InvestmentReport struct {
	AccountID      string              `json:"accountID"`
	Currency       Currency            `json:"currency"`
	Balance        decimal.Decimal     `json:"balance"`
	LastUpdateDate time.Time           `json:"lastUpdateDate"`
	TotalReturn    decimal.Decimal     `json:"totalReturn"`
	BullishDays    int                 `json:"bullishDays"`
	BearishDays    int                 `json:"bearishDays"`
	History        []InvestmentHistory `json:"history"`
}

// NewInvestmentReport derives the report from the account's history.
func NewInvestmentReport(a *Account) InvestmentReport {
	history := make([]InvestmentHistory, len(a.History))
	copy(history, a.History)
	return InvestmentReport{
		AccountID:      a.AccountID,
		Currency:       a.BaseCurrency,
		Balance:        a.Balance,
		LastUpdateDate: a.LastUpdateDate,
		TotalReturn:    a.TotalReturn(),
		BullishDays:    a.BullishDays(),
		BearishDays:    a.BearishDays(),
		History:        history,
	}
}

// SweepResult summarises one market-wide daily update.
type SweepResult struct {
	Date     time.Time       `json:"date"`
	Rate     decimal.Decimal `json:"rate"`
	Updated  int             `json:"updated"`
	Skipped  int             `json:"skipped"`
	Failures int             `json:"failures"`
}
