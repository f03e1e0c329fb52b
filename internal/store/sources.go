package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pulsemetrics/analytics-manager/internal/dependency"
	"github.com/pulsemetrics/analytics-manager/internal/entity"
	gerr "github.com/pulsemetrics/analytics-manager/internal/errors"
)

type sourcesStore struct {
	*MYSQLStore
}

// Sources returns an object implementing the Sources interface.
func (ms *MYSQLStore) Sources() dependency.Sources {
	return &sourcesStore{
		MYSQLStore: ms,
	}
}

func (ss *sourcesStore) AddSource(ctx context.Context, userID string, src *entity.SourceInsert) (*entity.Source, error) {
	source := &entity.Source{
		ID:            uuid.NewString(),
		UserID:        userID,
		Name:          src.Name,
		PropertyID:    src.PropertyID,
		ViewID:        src.ViewID,
		SyncFrequency: src.SyncFrequency,
		Credentials:   src.Credentials,
		CreatedAt:     ss.Now(),
	}

	query := `
	INSERT INTO analytics_sources
		(id, user_id, name, property_id, view_id, sync_frequency, credentials, created_at)
	VALUES
		(:id, :userId, :name, :propertyId, :viewId, :syncFrequency, :credentials, :createdAt)`

	err := ExecNamed(ctx, ss.db, query, map[string]any{
		"id":            source.ID,
		"userId":        source.UserID,
		"name":          source.Name,
		"propertyId":    source.PropertyID,
		"viewId":        source.ViewID,
		"syncFrequency": source.SyncFrequency,
		"credentials":   source.Credentials,
		"createdAt":     source.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("can't add analytics source: %w", err)
	}
	return source, nil
}

func (ss *sourcesStore) GetSourceById(ctx context.Context, id string) (*entity.Source, error) {
	query := `SELECT * FROM analytics_sources WHERE id = :id`
	source, err := QueryNamedOne[entity.Source](ctx, ss.db, query, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrNotFound
		}
		return nil, fmt.Errorf("can't get analytics source: %w", err)
	}
	return &source, nil
}

func (ss *sourcesStore) ListSources(ctx context.Context, userID string) ([]entity.Source, error) {
	query := `SELECT * FROM analytics_sources WHERE user_id = :userId ORDER BY created_at DESC`
	sources, err := QueryListNamed[entity.Source](ctx, ss.db, query, map[string]any{
		"userId": userID,
	})
	if err != nil {
		return nil, fmt.Errorf("can't list analytics sources: %w", err)
	}
	return sources, nil
}

func (ss *sourcesStore) DeleteSourceById(ctx context.Context, id, userID string) error {
	query := `DELETE FROM analytics_sources WHERE id = :id AND user_id = :userId`
	affected, err := ExecNamedAffected(ctx, ss.db, query, map[string]any{
		"id":     id,
		"userId": userID,
	})
	if err != nil {
		return fmt.Errorf("can't delete analytics source: %w", err)
	}
	if affected == 0 {
		return gerr.ErrNotFound
	}
	return nil
}

func (ss *sourcesStore) UpdateLastSynced(ctx context.Context, id string, ts time.Time) error {
	query := `UPDATE analytics_sources SET last_synced = :lastSynced WHERE id = :id`
	affected, err := ExecNamedAffected(ctx, ss.db, query, map[string]any{
		"id":         id,
		"lastSynced": ts,
	})
	if err != nil {
		return fmt.Errorf("can't update last synced: %w", err)
	}
	if affected == 0 {
		return gerr.ErrNotFound
	}
	return nil
}

func (ss *sourcesStore) ListSourcesDueForSync(ctx context.Context, now time.Time) ([]entity.Source, error) {
	query := `
	SELECT * FROM analytics_sources
	WHERE sync_frequency != 'manual'
		AND (last_synced IS NULL
			OR (sync_frequency = 'daily' AND last_synced <= DATE_SUB(:now, INTERVAL 1 DAY))
			OR (sync_frequency = 'weekly' AND last_synced <= DATE_SUB(:now, INTERVAL 7 DAY))
			OR (sync_frequency = 'monthly' AND last_synced <= DATE_SUB(:now, INTERVAL 1 MONTH)))`

	sources, err := QueryListNamed[entity.Source](ctx, ss.db, query, map[string]any{
		"now": now,
	})
	if err != nil {
		return nil, fmt.Errorf("can't list sources due for sync: %w", err)
	}
	return sources, nil
}
