package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rateboard/internal/config"
	"rateboard/internal/service"
)

// App holds all application dependencies and manages their lifecycle.
type App struct {
	cfg        *config.Config
	logger     *zap.SugaredLogger
	site       fs.FS
	board      *service.BoardService
	httpServer *http.Server
}

// NewApp initializes all dependencies and returns a ready-to-run App.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) (*App, error) {
	app := &App{
		cfg:    cfg,
		logger: logger,
	}

	if err := app.initSite(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *App) initSite() error {
	info, err := os.Stat(app.cfg.Site.StaticDir)
	if err != nil {
		return fmt.Errorf("open static dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("static dir %s is not a directory", app.cfg.Site.StaticDir)
	}
	app.site = os.DirFS(app.cfg.Site.StaticDir)
	app.logger.Infow("Serving site", "dir", app.cfg.Site.StaticDir, "page", app.cfg.Site.Page)
	return nil
}

func (app *App) initServices() error {
	loc, err := app.cfg.Site.Location()
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}

	chain := service.NewRatesChain(app.cfg.Rates, app.site)
	app.logger.Infow("Rate sources configured",
		"sources", chain.Sources(),
		"timeout_ms", app.cfg.Rates.TimeoutMs,
	)

	app.board = service.NewBoardService(chain, app.site, app.cfg.Site.Page, loc, app.logger)
	if err := app.board.CheckPage(); err != nil {
		return err
	}

	app.initHTTP(app.board)
	return nil
}

// Run starts the HTTP server, blocking until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Infow("HTTP server listening", "port", app.cfg.Server.Port)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown: triggered by context cancellation (signal or server failure).
	g.Go(func() error {
		<-ctx.Done()
		return app.shutdown()
	})

	return g.Wait()
}

// shutdown stops accepting requests and drains in-flight renders. A render
// can take up to two fetch timeouts, so the drain window covers that.
func (app *App) shutdown() error {
	app.logger.Infow("Shutting down server...")

	drain := 2*app.cfg.Rates.Timeout() + 5*time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), drain)
	defer cancel()

	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Errorw("HTTP server shutdown error", "error", err)
		return fmt.Errorf("http shutdown: %w", err)
	}

	app.logger.Infow("Shutdown complete")
	return nil
}
