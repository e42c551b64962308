package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RatePair is an ordered (from, to) currency pair.
type RatePair struct {
	From Currency
	To   Currency
}

func (p RatePair) String() string {
	return string(p.From) + "_" + string(p.To)
}

// RateTable holds static conversion multipliers between currency pairs.
// Rates are independent quotes: USD->EUR and EUR->USD need not be inverses.
// A RateTable is never mutated after construction.
type RateTable struct {
	rates map[RatePair]decimal.Decimal
}

// DefaultRates returns the quotes the platform ships with.
func DefaultRates() map[RatePair]decimal.Decimal {
	return map[RatePair]decimal.Decimal{
		{USD, EUR}: decimal.RequireFromString("0.86"),
		{USD, ARS}: decimal.RequireFromString("1410.00"),
		{EUR, USD}: decimal.RequireFromString("1.16"),
		{EUR, ARS}: decimal.RequireFromString("1630.00"),
		{ARS, USD}: decimal.RequireFromString("0.00071"),
		{ARS, EUR}: decimal.RequireFromString("0.00061"),
	}
}

// DefaultRateTable builds a RateTable from DefaultRates.
func DefaultRateTable() *RateTable {
	t, _ := NewRateTable(DefaultRates())
	return t
}

// NewRateTable validates and copies the given rates. Identity pairs are
// ignored because GetRate always answers 1 for them.
func NewRateTable(rates map[RatePair]decimal.Decimal) (*RateTable, error) {
	table := &RateTable{rates: make(map[RatePair]decimal.Decimal, len(rates))}
	for pair, rate := range rates {
		if !pair.From.IsValid() || !pair.To.IsValid() {
			return nil, fmt.Errorf("%w: rate pair %s uses an unsupported currency", apperrors.ErrValidation, pair)
		}
		if rate.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: rate for %s must be positive", apperrors.ErrValidation, pair)
		}
		if pair.From == pair.To {
			continue
		}
		table.rates[pair] = rate
	}
	return table, nil
}

// WithOverrides returns a new table with the given rates replacing or adding to t's.
func (t *RateTable) WithOverrides(overrides map[RatePair]decimal.Decimal) (*RateTable, error) {
	merged := make(map[RatePair]decimal.Decimal, len(t.rates)+len(overrides))
	for pair, rate := range t.rates {
		merged[pair] = rate
	}
	for pair, rate := range overrides {
		merged[pair] = rate
	}
	return NewRateTable(merged)
}

// GetRate returns the multiplier converting from -> to.
func (t *RateTable) GetRate(from, to Currency) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	rate, ok := t.rates[RatePair{From: from, To: to}]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w for %s -> %s", apperrors.ErrNoRateAvailable, from, to)
	}
	return rate, nil
}

// Convert multiplies amount by the from -> to rate and rounds once, to two
// decimal places, half away from zero. Identity conversions return amount as is.
func (t *RateTable) Convert(amount decimal.Decimal, from, to Currency) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	rate, err := t.GetRate(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate).Round(2), nil
}

// ParseRateOverrides reads a comma separated list of FROM_TO=rate entries,
// e.g. "USD_EUR=0.91,EUR_USD=1.09". Blank input yields no overrides.
func ParseRateOverrides(raw string) (map[RatePair]decimal.Decimal, error) {
	out := make(map[RatePair]decimal.Decimal)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("%w: rate entry '%s' must look like FROM_TO=rate", apperrors.ErrValidation, entry)
		}
		fromCode, toCode, ok := strings.Cut(strings.TrimSpace(key), "_")
		if !ok {
			return nil, fmt.Errorf("%w: rate key '%s' must look like FROM_TO", apperrors.ErrValidation, key)
		}
		from, err := ParseCurrency(fromCode)
		if err != nil {
			return nil, err
		}
		to, err := ParseCurrency(toCode)
		if err != nil {
			return nil, err
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: rate '%s' is not a number: %v", apperrors.ErrValidation, value, err)
		}
		out[RatePair{From: from, To: to}] = rate
	}
	return out, nil
}
