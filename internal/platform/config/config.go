package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string // Empty selects the in-memory stores
	Port           string
	IsProduction   bool
	MigrationsPath string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	RateLimit          string   // ulule format, e.g. "100-M"
	CORSAllowedOrigins []string

	AMQPURL      string // Empty disables event publishing
	AMQPExchange string

	MarketSeed         uint64 // 0 seeds from the current time
	DailySweepInterval time.Duration
	SimulationStart    time.Time
	ExchangeRates      string // FROM_TO=rate overrides, comma separated
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "bank-ledger-sim")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "ledger.events")
	v.SetDefault("MARKET_SEED", 0)
	v.SetDefault("DAILY_SWEEP_INTERVAL", "0s")
	v.SetDefault("SIMULATION_START", "")
	v.SetDefault("EXCHANGE_RATES", "")

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		RateLimit:      v.GetString("RATE_LIMIT"),
		AMQPURL:        v.GetString("AMQP_URL"),
		AMQPExchange:   v.GetString("AMQP_EXCHANGE"),
		MarketSeed:     v.GetUint64("MARKET_SEED"),
		ExchangeRates:  v.GetString("EXCHANGE_RATES"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Using in-memory stores.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		secret, err := utils.GenerateSigningSecret(32)
		if err != nil {
			return nil, err
		}
		cfg.JWTSecret = secret
		log.Println("Warning: JWT_SECRET not set. Using a random key; tokens will not survive a restart.")
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	sweepStr := v.GetString("DAILY_SWEEP_INTERVAL")
	sweepInterval, err := time.ParseDuration(sweepStr)
	if err != nil || sweepInterval < 0 {
		sweepInterval = 0
		log.Printf("Warning: Invalid value for DAILY_SWEEP_INTERVAL ('%s'). Background sweep disabled.\n", sweepStr)
	}
	cfg.DailySweepInterval = sweepInterval

	cfg.SimulationStart = time.Now().UTC()
	if startStr := v.GetString("SIMULATION_START"); startStr != "" {
		start, err := time.Parse(time.DateOnly, startStr)
		if err != nil {
			log.Printf("Warning: Invalid value for SIMULATION_START ('%s'). Starting today.\n", startStr)
		} else {
			cfg.SimulationStart = start
		}
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
