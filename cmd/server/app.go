package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/bank-api/internal/config"
	"github.com/phrazzld/bank-api/internal/crypto"
	"github.com/phrazzld/bank-api/internal/platform/postgres"
	"github.com/phrazzld/bank-api/internal/service"
	"github.com/phrazzld/bank-api/internal/service/auth"
	"github.com/phrazzld/bank-api/internal/store"
)

// application holds the server's wired dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore        store.UserStore
	accountStore     store.AccountStore
	transactionStore store.TransactionStore
	sessionStore     store.SessionStore

	authService    *auth.Service
	accountService *service.AccountService
}

// newApplication wires every component: database, stores, and services.
// Migrations run before any store touches the schema.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := runAppMigrations(db, logger); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			logger.Error("failed to close database after migration failure", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	accountStore := postgres.NewPostgresAccountStore(db, logger)
	transactionStore := postgres.NewPostgresTransactionStore(db, logger)
	sessionStore := postgres.NewPostgresSessionStore(db, logger)
	transactor := store.NewSQLTransactor(db)

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	encryptor, err := crypto.NewEncryptor(cfg.Crypto.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create encryptor: %w", err)
	}

	sessionLifetime := time.Duration(cfg.Auth.TokenLifetimeMinutes) * time.Minute

	authService := auth.NewService(
		transactor,
		userStore,
		sessionStore,
		tokenService,
		encryptor,
		auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		auth.NewBcryptVerifier(),
		sessionLifetime,
		logger,
	)

	accountService := service.NewAccountService(
		transactor,
		accountStore,
		transactionStore,
		logger,
	)

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		userStore:        userStore,
		accountStore:     accountStore,
		transactionStore: transactionStore,
		sessionStore:     sessionStore,
		authService:      authService,
		accountService:   accountService,
	}, nil
}

// run starts the HTTP server and blocks until shutdown.
func (app *application) run() error {
	router := app.setupRouter()
	return app.startHTTPServer(router)
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
