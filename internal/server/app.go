// Package server wires configuration, storage, the authentication core, the
// chatbot client and the HTTP API into a runnable application, and owns its
// lifecycle: eager startup validation and graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/chineye-ai/chatserver/internal/chatbot"
	"github.com/chineye-ai/chatserver/internal/logging"
	"github.com/chineye-ai/chatserver/internal/server/auth"
	"github.com/chineye-ai/chatserver/internal/server/config"
	"github.com/chineye-ai/chatserver/internal/server/httpapi"
	"github.com/chineye-ai/chatserver/internal/server/repositories/repomanager"
	"github.com/chineye-ai/chatserver/internal/server/services"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 30 * time.Second
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	api    *httpapi.Server
}

// NewApp validates the configuration and stands up every dependency eagerly:
// DB connection is pinged and migrations run before the first request can
// arrive, so a misconfigured process dies at startup instead of on first use.
func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	bot := chatbot.NewClient(cfg.GeminiAPIURL, cfg.GeminiAPIKey, cfg.ChatTimeout)
	resolver := auth.NewResolver(rm.Users(db), []byte(cfg.SecretKey))

	userService := services.NewUserService(db, rm, cfg)
	chatService := services.NewChatService(db, rm, bot, logger, cfg)
	newsletterService := services.NewNewsletterService(db, rm)

	api := httpapi.NewServer(logger, userService, chatService, newsletterService, resolver, cfg.CORSAllowOrigin)

	return &App{config: cfg, logger: logger, db: db, api: api}, nil
}

// Run serves the HTTP API until ctx is cancelled or SIGINT/SIGTERM/SIGQUIT
// arrives, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()
	defer app.db.Close()

	srv := &http.Server{
		Addr:              app.config.EndpointAddr,
		Handler:           app.api.Handler(),
		ReadHeaderTimeout: time.Minute,
		IdleTimeout:       5 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting http server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	return <-errCh
}
