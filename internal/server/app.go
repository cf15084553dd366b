// Package server initializes and runs the main application server. It
// configures the record store backend, wires the token issuer and business
// services into the HTTP transport, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"notekeeper/internal/filex"
	"notekeeper/internal/logging"
	"notekeeper/internal/server/auth"
	"notekeeper/internal/server/config"
	"notekeeper/internal/server/httpapi"
	"notekeeper/internal/server/repositories/records"
	"notekeeper/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	service *services.Service
	db      *sql.DB // nil when the file store backend is used
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	repo, db, err := newRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	issuer := auth.NewIssuer(cfg.TrustchainID, cfg.TrustchainSecret)
	service := services.NewService(repo, issuer, logger)

	return &App{config: cfg, logger: logger, service: service, db: db}, nil
}

// newRepository picks the record store backend: PostgreSQL when a DSN is
// configured (migrations run on startup), otherwise one file per user under
// the data directory.
func newRepository(ctx context.Context, cfg *config.Config) (records.Repository, *sql.DB, error) {
	if cfg.DatabaseDSN != "" {
		db, err := sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("db init error: %w", err)
		}
		if err := records.RunMigrations(ctx, db); err != nil {
			return nil, nil, fmt.Errorf("running migrations: %w", err)
		}
		return records.NewPostgresRepository(db), db, nil
	}

	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	return records.NewFileRepository(dir), nil, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewHTTPServer(app.config.EndpointAddr, app.service, app.logger, app.config.ShutdownTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "closing database", "error", err)
		}
	}
}
