package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PGSQL_URL", "PORT", "JWT_SECRET", "JWT_EXPIRY_DURATION", "DAILY_SWEEP_INTERVAL", "AMQP_URL", "MARKET_SEED", "SIMULATION_START", "IS_PRODUCTION", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Len(t, cfg.JWTSecret, 64, "a random secret is generated outside production")
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, "ledger.events", cfg.AMQPExchange)
	assert.Zero(t, cfg.DailySweepInterval)
	assert.Zero(t, cfg.MarketSeed)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/ledger")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY_DURATION", "15m")
	t.Setenv("DAILY_SWEEP_INTERVAL", "10s")
	t.Setenv("MARKET_SEED", "42")
	t.Setenv("SIMULATION_START", "2025-01-31")
	t.Setenv("EXCHANGE_RATES", "USD_EUR=0.9")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/ledger", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, 10*time.Second, cfg.DailySweepInterval)
	assert.Equal(t, uint64(42), cfg.MarketSeed)
	assert.Equal(t, time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC), cfg.SimulationStart)
	assert.Equal(t, "USD_EUR=0.9", cfg.ExchangeRates)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidDurationsFallBack(t *testing.T) {
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("JWT_EXPIRY_DURATION", "forever")
	t.Setenv("DAILY_SWEEP_INTERVAL", "-1s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Zero(t, cfg.DailySweepInterval)
}

func TestLoadConfig_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}
