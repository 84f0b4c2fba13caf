package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/venturelink-platform/internal/api"
	"github.com/venturelink-platform/internal/config"
	"github.com/venturelink-platform/internal/data/memory"
	mongorepo "github.com/venturelink-platform/internal/data/mongo"
	"github.com/venturelink-platform/internal/data/postgres"
	"github.com/venturelink-platform/internal/domain/meeting"
	"github.com/venturelink-platform/internal/domain/transaction"
	"github.com/venturelink-platform/internal/domain/user"
	"github.com/venturelink-platform/internal/domain/wallet"
	"github.com/venturelink-platform/internal/events"
	"github.com/venturelink-platform/internal/logger"
	"github.com/venturelink-platform/internal/platform/messaging/producers"
	"github.com/venturelink-platform/internal/platform/persistence"
	"github.com/venturelink-platform/internal/service"
)

// repositories groups the storage-backend implementations behind the domain
// interfaces so the engines never see which backend is active
type repositories struct {
	users        user.Repository
	wallets      wallet.Repository
	transactions transaction.Repository
	meetings     meeting.Repository
	availability meeting.AvailabilityRepository
}

func main() {
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	cfg, err := config.LoadConfig("api")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg)

	// Wire the storage backend selected by configuration
	var (
		repos      *repositories
		postgresDB *persistence.PostgresDB
		mongoDB    *persistence.MongoDB
	)
	switch cfg.Storage.Backend {
	case config.StorageBackendDatabase:
		postgresDB, err = persistence.NewPostgresDB(appCtx, log, &cfg.Postgres)
		if err != nil {
			log.Error("Failed to initialize PostgreSQL", "error", err)
			os.Exit(1)
		}

		mongoDB, err = persistence.NewMongoDB(appCtx, log, &cfg.MongoDB)
		if err != nil {
			log.Error("Failed to initialize MongoDB", "error", err)
			os.Exit(1)
		}

		repos = &repositories{
			users:        postgres.NewUserRepository(log, postgresDB),
			wallets:      postgres.NewWalletRepository(log, postgresDB),
			transactions: mongorepo.NewTransactionRepository(log, mongoDB.Database()),
			meetings:     postgres.NewMeetingRepository(log, postgresDB),
			availability: postgres.NewAvailabilityRepository(log, postgresDB),
		}
	default:
		// Session store: state lives for the process lifetime only
		repos = &repositories{
			users:        memory.NewUserRepository(),
			wallets:      memory.NewWalletRepository(),
			transactions: memory.NewTransactionRepository(),
			meetings:     memory.NewMeetingRepository(),
			availability: memory.NewAvailabilityRepository(),
		}
		log.Info("Using in-memory session store")
	}

	// Event publishing is optional; the engines run the same either way
	var publisher producers.MessagePublisher = events.NoopPublisher{}
	if cfg.Kafka.Enabled {
		publisher, err = producers.NewPlatformEventProducer(appCtx, log, &cfg.Kafka)
		if err != nil {
			log.Error("Failed to initialize Kafka producer", "error", err)
			os.Exit(1)
		}
	}

	dispatcher, err := events.NewDispatcher(log, publisher, cfg.Dispatcher.PoolSize)
	if err != nil {
		log.Error("Failed to initialize event dispatcher", "error", err)
		os.Exit(1)
	}

	// Initialize the engines
	userService := service.NewUserService(repos.users)
	ledgerService := service.NewLedgerService(log, repos.wallets, repos.transactions, repos.users, dispatcher, cfg.Wallet.StartingBalance, cfg.Wallet.Currency)
	bookingService := service.NewBookingService(log, repos.meetings, repos.availability, repos.users, dispatcher)

	server := api.NewServer(log, cfg, userService, ledgerService, bookingService)
	log.Info("REST server initialized")

	errChan := make(chan error, 1)

	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	cancelAppCtx()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	log.Info("Starting graceful shutdown...")

	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	if err = dispatcher.Close(); err != nil {
		log.Error("Error closing event dispatcher", "error", err)
	}

	if postgresDB != nil {
		postgresDB.Close()
	}
	if mongoDB != nil {
		if err = mongoDB.Close(shutdownCtx); err != nil {
			log.Error("Error closing MongoDB connection", "error", err)
		}
	}

	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
