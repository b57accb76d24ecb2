// Package server wires configuration, storage and services together and
// runs the gRPC endpoint alongside the background janitor until shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/eterbox/internal/logging"
	"github.com/dmitrijs2005/eterbox/internal/server/auth"
	"github.com/dmitrijs2005/eterbox/internal/server/config"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/eterbox/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/eterbox/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	server  *gs.GRPCServer
	janitor *services.Janitor
}

// NewApp opens the database, applies migrations and builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	app, err := build(db, m, c, logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	return app, nil
}

func build(db *sql.DB, m repomanager.RepositoryManager, c *config.Config, logger logging.Logger) (*App, error) {
	hasher, err := auth.NewPasswordHasher(c.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("password hasher: %w", err)
	}

	sessions := services.NewSessionService(db, m, c, logger)

	twofactor, err := services.NewTwoFactorService(db, m, hasher, c, logger)
	if err != nil {
		return nil, fmt.Errorf("two factor: %w", err)
	}

	authService, err := services.NewAuthService(db, m, hasher, sessions, twofactor, services.NewLogNotifier(logger), c, logger)
	if err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}

	webauthn, err := services.NewWebAuthnService(db, m, sessions, c, logger)
	if err != nil {
		return nil, fmt.Errorf("webauthn: %w", err)
	}

	server := gs.NewGRPCServer(c.EndpointAddrGRPC, logger, gs.Services{
		Auth:      authService,
		Sessions:  sessions,
		TwoFactor: twofactor,
		WebAuthn:  webauthn,
		Envelopes: services.NewEnvelopeService(db, m),
		Admin:     services.NewAdminService(db, m, sessions, logger),
	})

	return &App{
		config:  c,
		logger:  logger,
		db:      db,
		server:  server,
		janitor: services.NewJanitor(db, m, c.JanitorInterval, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until a termination signal arrives or the server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.janitor.Run(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, "grpc server stopped", "error", err)
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
