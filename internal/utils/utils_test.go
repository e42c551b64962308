package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatWithSymbol(t *testing.T) {
	tests := []struct {
		symbol string
		amount string
		want   string
	}{
		{"US$", "1000", "US$1,000.00"},
		{"$", "1234567.891", "$1,234,567.89"},
		{"€", "0.5", "€0.50"},
		{"US$", "-10", "-US$10.00"},
		{"$", "12345678901234567.89", "$12,345,678,901,234,567.89"},
		{"$", "98765432109876543.21", "$98,765,432,109,876,543.21"},
		{"$", "1234567890123456789012.345", "$1,234,567,890,123,456,789,012.35"},
		{"$", "999.999", "$1,000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWithSymbol(tt.symbol, decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestPINHash(t *testing.T) {
	hash, err := HashPIN("1234")
	require.NoError(t, err)
	assert.NotEqual(t, "1234", hash)
	assert.True(t, CheckPINHash("1234", hash))
	assert.False(t, CheckPINHash("4321", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("client-1", "secret", time.Minute, "ledger")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret", "ledger")
	require.NoError(t, err)
	assert.Equal(t, "client-1", claims.Subject)

	_, err = ParseAndValidateJWT(token, "other-secret", "ledger")
	assert.Error(t, err)

	_, err = ParseAndValidateJWT(token, "secret", "someone-else")
	assert.Error(t, err)

	expired, err := GenerateJWT("client-1", "secret", -time.Minute, "ledger")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret", "ledger")
	assert.Error(t, err)
}

func TestGenerateSigningSecret(t *testing.T) {
	a, err := GenerateSigningSecret(32)
	require.NoError(t, err)
	assert.Len(t, a, 64)

	b, err := GenerateSigningSecret(48)
	require.NoError(t, err)
	assert.Len(t, b, 96)
	assert.NotEqual(t, a, b[:64])

	_, err = GenerateSigningSecret(16)
	assert.Error(t, err)
}
