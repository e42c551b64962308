package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/adapters/messaging"
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_sim/internal/core/services"
	"github.com/SscSPs/bank_ledger_sim/internal/handlers"
	"github.com/SscSPs/bank_ledger_sim/internal/middleware"
	"github.com/SscSPs/bank_ledger_sim/internal/platform/config"
	"github.com/SscSPs/bank_ledger_sim/internal/repositories/database/pgsql"
	"github.com/SscSPs/bank_ledger_sim/internal/repositories/memory"
	"github.com/SscSPs/bank_ledger_sim/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeRepos, err := setupRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepos()

	rates, err := setupRates(cfg)
	if err != nil {
		return err
	}

	publisher := setupPublisher(cfg, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", slog.String("error", err.Error()))
		}
	}()

	clock, err := services.RestoreSimulatedClock(ctx, repos.AccountRepo, cfg.SimulationStart)
	if err != nil {
		return err
	}
	logger.Info("Simulated calendar ready", slog.String("today", clock.Today().Format(time.DateOnly)))

	container := services.NewServiceContainer(cfg, repos, services.Dependencies{
		Rates:     rates,
		Clock:     clock,
		Market:    services.NewMarketSimulator(services.NewSeededRandomSource(cfg.MarketSeed)),
		Publisher: publisher,
	})

	router, err := setupRouter(cfg, container, logger)
	if err != nil {
		return err
	}

	if cfg.DailySweepInterval > 0 {
		go runDailySweep(middleware.WithLogger(ctx, logger), container.Investment, cfg.DailySweepInterval)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// setupRepositories picks postgres when a database URL is configured and the
// in-memory stores otherwise.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Info("Using in-memory stores")
		return memory.NewRepositoryProvider(), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

func setupRates(cfg *config.Config) (*domain.RateTable, error) {
	overrides, err := domain.ParseRateOverrides(cfg.ExchangeRates)
	if err != nil {
		return nil, err
	}
	return domain.DefaultRateTable().WithOverrides(overrides)
}

// setupPublisher falls back to dropping events when the broker is not
// configured or cannot be reached, so the ledger keeps working without it.
func setupPublisher(cfg *config.Config, logger *slog.Logger) portssvc.TransactionEventPublisher {
	if cfg.AMQPURL == "" {
		return messaging.NoopPublisher{}
	}
	publisher, err := messaging.NewRabbitMQPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		logger.Warn("Event publishing disabled", slog.String("error", err.Error()))
		return messaging.NoopPublisher{}
	}
	return publisher
}

func setupRouter(cfg *config.Config, container *portssvc.ServiceContainer, logger *slog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	if len(cfg.CORSAllowedOrigins) == 0 || cfg.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	r.Use(cors.New(corsConfig))

	apiLimiter, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		return nil, err
	}
	r.Use(middleware.RateLimit(apiLimiter))

	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		return nil, err
	}
	return r, nil
}

// runDailySweep advances the simulated calendar every interval until ctx ends.
func runDailySweep(ctx context.Context, investment portssvc.InvestmentSvcFacade, interval time.Duration) {
	logger := middleware.GetLoggerFromCtx(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Daily sweep stopped")
			return
		case <-ticker.C:
			result, err := investment.AdvanceDay(ctx)
			if err != nil {
				logger.Error("Daily sweep failed", slog.String("error", err.Error()))
				continue
			}
			logger.Info("Daily sweep finished",
				slog.Time("date", result.Date),
				slog.Int("updated", result.Updated),
				slog.Int("skipped", result.Skipped),
				slog.Int("failures", result.Failures))
		}
	}
}
