package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAccount_Credit(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		want    decimal.Decimal
		wantErr error
	}{
		{name: "positive amount", amount: dec("25.50"), want: dec("125.50")},
		{name: "zero amount", amount: decimal.Zero, want: dec("100"), wantErr: apperrors.ErrInvalidAmount},
		{name: "negative amount", amount: dec("-1"), want: dec("100"), wantErr: apperrors.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc, err := domain.NewSavingsAccount("client-1", domain.USD, dec("100"))
			require.NoError(t, err)

			err = acc.Credit(tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, tt.want.Equal(acc.Balance), "balance = %s, want %s", acc.Balance, tt.want)
		})
	}
}

func TestAccount_Debit_Savings(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		want    decimal.Decimal
		wantErr error
	}{
		{name: "partial", amount: dec("40"), want: dec("60")},
		{name: "exact balance", amount: dec("100"), want: decimal.Zero},
		{name: "over balance", amount: dec("100.01"), want: dec("100"), wantErr: apperrors.ErrInsufficientFunds},
		{name: "non-positive", amount: decimal.Zero, want: dec("100"), wantErr: apperrors.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc, err := domain.NewSavingsAccount("client-1", domain.USD, dec("100"))
			require.NoError(t, err)

			err = acc.Debit(tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, tt.want.Equal(acc.Balance), "balance = %s, want %s", acc.Balance, tt.want)
			assert.False(t, acc.Balance.IsNegative())
		})
	}
}

func TestAccount_Debit_CreditLimit(t *testing.T) {
	acc, err := domain.NewCreditAccount("client-1", domain.ARS, decimal.Zero, dec("100000"))
	require.NoError(t, err)

	require.NoError(t, acc.Debit(dec("50000")))
	assert.True(t, dec("-50000").Equal(acc.Balance))

	err = acc.Debit(dec("150000"))
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.True(t, dec("-50000").Equal(acc.Balance))

	require.NoError(t, acc.Debit(dec("50000")))
	assert.True(t, dec("-100000").Equal(acc.Balance))
	assert.False(t, acc.HasSufficientFunds(dec("0.01")))
}

func TestAccount_Factories(t *testing.T) {
	_, err := domain.NewSavingsAccount("", domain.USD, decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	_, err = domain.NewSavingsAccount("client-1", domain.Currency("GBP"), decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	_, err = domain.NewSavingsAccount("client-1", domain.USD, dec("-1"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = domain.NewCreditAccount("client-1", domain.USD, decimal.Zero, dec("-1"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = domain.NewInvestmentAccount("client-1", domain.USD, decimal.Zero, time.Time{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	opened := time.Date(2025, time.January, 10, 15, 30, 0, 0, time.UTC)
	inv, err := domain.NewInvestmentAccount("client-1", domain.USD, dec("10"), opened)
	require.NoError(t, err)
	assert.Equal(t, domain.KindInvestment, inv.Kind)
	assert.Equal(t, time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC), inv.LastUpdateDate)
	assert.Empty(t, inv.History)
	assert.NotEmpty(t, inv.AccountID)
	assert.Equal(t, "client-1", inv.CreatedBy)
}

func TestAccount_TypeLabel(t *testing.T) {
	savings, _ := domain.NewSavingsAccount("c", domain.USD, decimal.Zero)
	credit, _ := domain.NewCreditAccount("c", domain.USD, decimal.Zero, dec("1000"))
	inv, _ := domain.NewInvestmentAccount("c", domain.EUR, decimal.Zero, time.Now())

	assert.Equal(t, "Savings Account", savings.TypeLabel())
	assert.Equal(t, "Credit Account (Limit: US$1,000.00)", credit.TypeLabel())
	assert.Equal(t, "Investment Account", inv.TypeLabel())
	assert.Equal(t, "Credit Account", credit.Kind.Label())
	assert.Equal(t, "Unknown Account", domain.AccountKind("LOAN").Label())
}

func TestAccount_SameAsAndClone(t *testing.T) {
	a, _ := domain.NewInvestmentAccount("c", domain.USD, dec("1000"), time.Now())
	b, _ := domain.NewInvestmentAccount("c", domain.USD, dec("1000"), time.Now())

	assert.True(t, a.SameAs(a))
	assert.False(t, a.SameAs(b))
	assert.False(t, a.SameAs(nil))

	cp := a.Clone()
	assert.True(t, a.SameAs(cp))
	require.NoError(t, cp.ApplyDailyReturn(dec("0.01"), time.Now().AddDate(0, 0, 1)))
	assert.Len(t, cp.History, 1)
	assert.Empty(t, a.History)
	assert.True(t, dec("1000").Equal(a.Balance))
}
