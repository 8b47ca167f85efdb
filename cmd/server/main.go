// Package main implements the entry point for the bank API server,
// which handles user onboarding, bank account management, and account
// funding on top of PostgreSQL.
package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/bank-api/internal/config"
	"github.com/phrazzld/bank-api/internal/platform/logger"
)

// main is the entry point for the bank-api server.
// It loads configuration, sets up logging, establishes the database
// connection, runs migrations, injects dependencies, and starts the
// HTTP server with graceful shutdown.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(); err != nil {
		app.logger.Error("Server exited with error", "error", err)
		app.cleanup()
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up all application components.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	return app, nil
}
