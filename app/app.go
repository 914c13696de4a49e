// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bytebank-api/config"
	"bytebank-api/db"
	"bytebank-api/handler"
	"bytebank-api/logger"
	"bytebank-api/repository"
	"bytebank-api/router"
	"bytebank-api/service"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const migrationsDir = "db/migrations"

// TestApp exposes the wired router and ledger to integration tests.
type TestApp struct {
	Router http.Handler
	Ledger *service.Ledger
}

// NewTestApp wires every layer in memory. journal and cache may be nil.
func NewTestApp(journal repository.Journal, cache service.ICacheClient) *TestApp {
	ledger, r := wire(journal, cache, time.Second)
	return &TestApp{Router: r, Ledger: ledger}
}

func wire(journal repository.Journal, cache service.ICacheClient, lockTimeout time.Duration) (*service.Ledger, http.Handler) {
	ledger := service.NewLedger(repository.NewContaStore(lockTimeout), repository.NewHistoricoIndex(), journal)

	contaService := service.NewContaService(ledger, cache, config.AppConfig.Redis.TTL)
	transacaoService := service.NewTransacaoService(ledger)
	relatorioService := service.NewRelatorioService(ledger)

	r := router.NewRouter(
		handler.NewContaHandler(contaService),
		handler.NewTransacaoHandler(transacaoService),
		handler.NewRelatorioHandler(relatorioService),
	)
	return ledger, r
}

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.SetLevel(config.AppConfig.Log.Level)
	logger.Log.Info("Configuration loaded successfully")

	if _, err := config.AppConfig.JWTKey(); err != nil {
		logger.Log.Fatalf("Refusing to start: %v (set JWT_SECRET_KEY)", err)
	}

	ctx := context.Background()

	// --- Optional durability and cache ---
	var journal repository.Journal = repository.NopJournal{}
	var database *sql.DB
	if config.AppConfig.Database.Enabled {
		var err error
		database, err = db.Connect()
		if err != nil {
			logger.Log.Fatalf("Error connecting to the database: %v", err)
		}
		defer database.Close()

		if config.AppConfig.Database.Migrate {
			if err := db.Migrate(migrationsDir, db.ConnString()); err != nil {
				logger.Log.Fatalf("Error running migrations: %v", err)
			}
		}
		journal = repository.NewPostgresJournal(database)
	} else {
		logger.Log.Warn("Database disabled, the ledger lives only in memory")
	}

	var cache service.ICacheClient
	if config.AppConfig.Redis.Enabled {
		rdb, err := db.ConnectRedis(ctx)
		if err != nil {
			logger.Log.Fatalf("Error connecting to Redis: %v", err)
		}
		defer func(rdb *redis.Client) {
			if err := rdb.Close(); err != nil {
				logger.Log.WithError(err).Warn("Failed to close Redis client")
			}
		}(rdb)
		cache = rdb
	}

	// --- Wiring All Layers Together ---
	ledger, r := wire(journal, cache, config.AppConfig.Ledger.LockTimeout)
	if err := ledger.Hidratar(ctx); err != nil {
		logger.Log.Fatalf("Error loading ledger state: %v", err)
	}

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           otelhttp.NewHandler(r, "bytebank-api"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("Server forced to shutdown: %v", err)
		return
	}

	logger.Log.Info("Server exited properly")
}
