package syncworker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pulsemetrics/analytics-manager/internal/dependency"
	"github.com/pulsemetrics/analytics-manager/internal/entity"
)

// Config holds configuration for the source sync worker.
type Config struct {
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
	LookbackDays   int           `mapstructure:"lookback_days"` // how many days back to refresh on each run
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: 1 * time.Hour,
		LookbackDays:   7,
	}
}

// Worker periodically refreshes sources whose sync frequency says they are
// due. A refresh runs the default query through the analytics client and
// bumps the source's last-synced timestamp.
type Worker struct {
	repo   dependency.Repository
	client dependency.AnalyticsClient
	c      *Config
	ctx    context.Context
	stop   context.CancelFunc
}

// New creates a new sync worker.
func New(repo dependency.Repository, client dependency.AnalyticsClient, c *Config) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval == 0 {
		c.WorkerInterval = 1 * time.Hour
	}
	if c.LookbackDays == 0 {
		c.LookbackDays = 7
	}
	return &Worker{
		repo:   repo,
		client: client,
		c:      c,
	}
}

// Start starts the worker.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("sync worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("sync worker already stopped or not started")
	}
	w.stop()
	w.stop = nil
	return nil
}

func (w *Worker) worker(ctx context.Context) {
	if err := w.syncDue(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "source sync failed on startup",
			slog.String("err", err.Error()))
	}

	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.syncDue(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "source sync failed",
					slog.String("err", err.Error()))
			}
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) syncDue(ctx context.Context) error {
	now := time.Now()

	due, err := w.repo.Sources().ListSourcesDueForSync(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to list sources due for sync: %w", err)
	}
	if len(due) == 0 {
		return nil
	}

	slog.Default().InfoContext(ctx, "starting source sync",
		slog.Int("sources", len(due)))

	// GA4 data lags by roughly a day, so the window ends yesterday.
	endDate := now.AddDate(0, 0, -1)
	startDate := endDate.AddDate(0, 0, -w.c.LookbackDays)

	for i := range due {
		src := &due[i]
		if err := w.syncSource(ctx, src, startDate, endDate); err != nil {
			slog.Default().ErrorContext(ctx, "failed to sync source",
				slog.String("source_id", src.ID),
				slog.String("err", err.Error()))
			continue
		}
		if err := w.repo.Sources().UpdateLastSynced(ctx, src.ID, now); err != nil {
			slog.Default().ErrorContext(ctx, "failed to update last synced",
				slog.String("source_id", src.ID),
				slog.String("err", err.Error()))
		}
	}

	slog.Default().InfoContext(ctx, "source sync completed")
	return nil
}

func (w *Worker) syncSource(ctx context.Context, src *entity.Source, startDate, endDate time.Time) error {
	if src.Credentials.Empty() {
		return fmt.Errorf("source has no credentials")
	}

	params := entity.QueryParameters{
		SourceID:   src.ID,
		StartDate:  entity.Date{Time: startDate},
		EndDate:    entity.Date{Time: endDate},
		Metrics:    []string{entity.MetricActiveUsers},
		Dimensions: []string{entity.DimensionDate},
	}

	resp, err := w.client.RunReport(ctx, src, params)
	if err != nil {
		return fmt.Errorf("failed to run report: %w", err)
	}

	slog.Default().InfoContext(ctx, "synced source",
		slog.String("source_id", src.ID),
		slog.Int("rows", len(resp.Rows)))
	return nil
}
