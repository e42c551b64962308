package domain_test

import (
	"testing"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateTable_Convert(t *testing.T) {
	table := domain.DefaultRateTable()

	tests := []struct {
		name   string
		amount string
		from   domain.Currency
		to     domain.Currency
		want   string
	}{
		{name: "usd to eur", amount: "100", from: domain.USD, to: domain.EUR, want: "86.00"},
		{name: "eur to ars", amount: "2.5", from: domain.EUR, to: domain.ARS, want: "4075.00"},
		{name: "ars to usd rounds once", amount: "1000", from: domain.ARS, to: domain.USD, want: "0.71"},
		{name: "ars to usd half up", amount: "7", from: domain.ARS, to: domain.USD, want: "0.00"},
		{name: "identity keeps scale", amount: "10.123", from: domain.USD, to: domain.USD, want: "10.123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Convert(dec(tt.amount), tt.from, tt.to)
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestRateTable_GetRate(t *testing.T) {
	table := domain.DefaultRateTable()

	rate, err := table.GetRate(domain.ARS, domain.ARS)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(rate))

	rate, err = table.GetRate(domain.USD, domain.ARS)
	require.NoError(t, err)
	assert.True(t, dec("1410").Equal(rate))

	sparse, err := domain.NewRateTable(map[domain.RatePair]decimal.Decimal{
		{From: domain.USD, To: domain.EUR}: dec("0.9"),
	})
	require.NoError(t, err)

	_, err = sparse.GetRate(domain.EUR, domain.USD)
	assert.ErrorIs(t, err, apperrors.ErrNoRateAvailable)

	_, err = sparse.Convert(dec("1"), domain.EUR, domain.USD)
	assert.ErrorIs(t, err, apperrors.ErrNoRateAvailable)
}

func TestNewRateTable_Validation(t *testing.T) {
	_, err := domain.NewRateTable(map[domain.RatePair]decimal.Decimal{
		{From: domain.USD, To: domain.EUR}: decimal.Zero,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewRateTable(map[domain.RatePair]decimal.Decimal{
		{From: domain.USD, To: domain.Currency("XXX")}: dec("1"),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseRateOverrides(t *testing.T) {
	overrides, err := domain.ParseRateOverrides(" usd_eur=0.91 , EUR_USD=1.09,")
	require.NoError(t, err)
	require.Len(t, overrides, 2)
	assert.True(t, dec("0.91").Equal(overrides[domain.RatePair{From: domain.USD, To: domain.EUR}]))

	table, err := domain.DefaultRateTable().WithOverrides(overrides)
	require.NoError(t, err)
	got, err := table.Convert(dec("100"), domain.USD, domain.EUR)
	require.NoError(t, err)
	assert.True(t, dec("91").Equal(got))

	// untouched pairs keep their defaults
	got, err = table.Convert(dec("1"), domain.USD, domain.ARS)
	require.NoError(t, err)
	assert.True(t, dec("1410").Equal(got))

	empty, err := domain.ParseRateOverrides("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, bad := range []string{"USD_EUR", "USDEUR=1", "USD_GBP=1", "USD_EUR=abc"} {
		_, err := domain.ParseRateOverrides(bad)
		assert.ErrorIs(t, err, apperrors.ErrValidation, bad)
	}
}

func TestParseCurrency(t *testing.T) {
	c, err := domain.ParseCurrency(" usd ")
	require.NoError(t, err)
	assert.Equal(t, domain.USD, c)
	assert.Equal(t, "US$", c.Symbol())

	_, err = domain.ParseCurrency("GBP")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	codes := []domain.Currency{}
	for _, info := range domain.SupportedCurrencies() {
		codes = append(codes, info.CurrencyCode)
	}
	assert.Equal(t, []domain.Currency{domain.ARS, domain.EUR, domain.USD}, codes)
}
