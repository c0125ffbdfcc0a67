package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"watermyplants/internal/client"
	"watermyplants/internal/config"
	"watermyplants/internal/handler"
	"watermyplants/internal/phone"
	"watermyplants/internal/repository"
	"watermyplants/internal/repository/journal"
	"watermyplants/internal/repository/postgres"
	"watermyplants/internal/service"
	"watermyplants/internal/strength"
	"watermyplants/internal/validation"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Water My Plants registration bot")

	// Load configuration
	cfg, err := config.LoadBot()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("register_url", cfg.Register.URL),
		zap.Duration("form_ttl", cfg.FormTTL),
		zap.Bool("journal_enabled", cfg.JournalEnabled()),
	)

	// Submission journal
	var submissions repository.SubmissionRepository = journal.NewLogRepo(logger)
	if cfg.JournalEnabled() {
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connection established")

		changed, err := postgres.Migrate(db)
		if err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
		if changed {
			logger.Info("Migrations applied successfully")
		} else {
			logger.Info("No new migrations to apply")
		}

		submissions = postgres.NewSubmissionRepo(db)
	}

	// Registration API client
	registrar := client.NewHTTPRegistrar(cfg.Register.URL, cfg.Register.Timeout)
	defer registrar.Close()

	// Initialize services
	sessions := service.NewSessionService(service.FormDeps{
		Validator: validation.New(),
		Registrar: registrar,
		Journal:   submissions,
		Estimator: strength.NewZxcvbn(),
		Logger:    logger,
	})
	maintenance := service.NewMaintenanceService(sessions, submissions, cfg.FormTTL, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize handler
	h := handler.NewHandler(bot, sessions, phone.NewNANPFormatter(), logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start maintenance job in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runMaintenanceJob(ctx, maintenance, cfg.FormTTL, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()
	sessions.Wait()

	logger.Info("Bot stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMaintenanceJob evicts idle forms every half TTL and trims the
// submission journal once a day
func runMaintenanceJob(ctx context.Context, maintenance *service.MaintenanceService, formTTL time.Duration, logger *zap.Logger) {
	// Trim the journal once at startup
	if err := maintenance.CleanupJournal(ctx); err != nil {
		logger.Error("Failed to run initial journal cleanup", zap.Error(err))
	}

	evictTicker := time.NewTicker(max(formTTL/2, time.Second))
	defer evictTicker.Stop()

	journalTicker := time.NewTicker(24 * time.Hour)
	defer journalTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Maintenance job stopped")
			return
		case <-evictTicker.C:
			maintenance.EvictIdleForms()
		case <-journalTicker.C:
			logger.Info("Running scheduled journal cleanup")
			if err := maintenance.CleanupJournal(ctx); err != nil {
				logger.Error("Failed to run scheduled journal cleanup", zap.Error(err))
			}
		}
	}
}
