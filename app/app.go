package app

import (
	"context"

	"log/slog"

	"github.com/pulsemetrics/analytics-manager/config"
	"github.com/pulsemetrics/analytics-manager/internal/analytics/ga4"
	"github.com/pulsemetrics/analytics-manager/internal/analytics/syncworker"
	"github.com/pulsemetrics/analytics-manager/internal/analytics/synthetic"
	httpapi "github.com/pulsemetrics/analytics-manager/internal/api/http"
	"github.com/pulsemetrics/analytics-manager/internal/apisrv/analytics"
	"github.com/pulsemetrics/analytics-manager/internal/apisrv/auth"
	"github.com/pulsemetrics/analytics-manager/internal/dependency"
	"github.com/pulsemetrics/analytics-manager/internal/store"
)

// App is the main application
type App struct {
	hs     *httpapi.Server
	db     dependency.Repository
	syncer *syncworker.Worker
	c      *config.Config
	done   chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting analytics manager")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()))
		return err
	}

	authS, err := auth.New(&a.c.Auth, a.db.Users())
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed to create new auth server",
			slog.String("err", err.Error()))
		return err
	}

	var client dependency.AnalyticsClient
	if a.c.GA4.Enabled {
		client = ga4.NewClient(ctx, &a.c.GA4)
	} else {
		client = synthetic.New()
	}

	analyticsS := analytics.New(a.db, client)

	a.syncer = syncworker.New(a.db, client, &a.c.Sync)
	if err = a.syncer.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start sync worker",
			slog.String("err", err.Error()))
		return err
	}

	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, authS, analyticsS); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()))
		return err
	}

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.syncer != nil {
		if err := a.syncer.Stop(); err != nil {
			slog.Default().ErrorContext(ctx, "sync worker stop failed",
				slog.String("err", err.Error()))
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
