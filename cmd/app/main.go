package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "gymdesk/docs"

	"gymdesk/internal/config"
	"gymdesk/internal/db"
	"gymdesk/internal/gym"
	"gymdesk/internal/logger"
	"gymdesk/internal/member"
	"gymdesk/internal/notify"
	"gymdesk/internal/owner"
	"gymdesk/internal/plan"
	"gymdesk/internal/server"
)

// @title GymDesk API
// @version 1.0
// @description Admin console backend for gym management: plans, gyms, members, payments, inquiries.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	logger.Info("Starting GymDesk application")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	notifyService := notify.New(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.RedisAddr,
	)
	defer notifyService.Close()
	logger.Info("Notify service initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go notifyService.Start(ctx)

	scanner := notify.NewScanner(
		notifyService,
		gym.NewService(gym.NewRepository(database), plan.NewRepository(database), cfg.ExpiringSoonDays),
		member.NewService(member.NewRepository(database), plan.NewRepository(database), cfg.ExpiringSoonDays),
		owner.NewRepository(database),
		time.Duration(cfg.ReminderScanHours)*time.Hour,
	)
	go scanner.Run(ctx)

	srv := server.New(database, cfg, notifyService)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
