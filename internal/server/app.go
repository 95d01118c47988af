// Package server initializes and runs the finance tracker application:
// it opens the database pool, applies migrations, wires the services and
// serves HTTP until a shutdown signal arrives.
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

	"github.com/dimaum1001/financas-web/internal/logging"
	"github.com/dimaum1001/financas-web/internal/server/config"
	"github.com/dimaum1001/financas-web/internal/server/httpapi"
	"github.com/dimaum1001/financas-web/internal/server/repositories/repomanager"
	"github.com/dimaum1001/financas-web/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	us := services.NewUserService(db, rm, cfg)
	cs := services.NewCategoryService(db, rm)
	ts := services.NewTransactionService(db, rm)

	srv := httpapi.NewServer(cfg, logger, us, cs, ts)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting server", "addr", app.config.Addr)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Listen(app.config.Addr); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	<-ctx.Done()

	app.logger.Info(ctx, "shutting down")
	if err := app.server.Shutdown(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	wg.Wait()
}
