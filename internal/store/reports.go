package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pulsemetrics/analytics-manager/internal/dependency"
	"github.com/pulsemetrics/analytics-manager/internal/entity"
	gerr "github.com/pulsemetrics/analytics-manager/internal/errors"
)

type reportsStore struct {
	*MYSQLStore
}

// Reports returns an object implementing the Reports interface.
func (ms *MYSQLStore) Reports() dependency.Reports {
	return &reportsStore{
		MYSQLStore: ms,
	}
}

func (rs *reportsStore) AddReport(ctx context.Context, userID string, rep *entity.ReportInsert) (*entity.Report, error) {
	now := rs.Now()
	report := &entity.Report{
		ID:          uuid.NewString(),
		UserID:      userID,
		SourceID:    rep.SourceID,
		Name:        rep.Name,
		Description: rep.Description,
		StartDate:   rep.StartDate,
		EndDate:     rep.EndDate,
		Metrics:     rep.Metrics,
		Dimensions:  rep.Dimensions,
		Filters:     rep.Filters,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := `
	INSERT INTO analytics_reports
		(id, user_id, source_id, name, description, start_date, end_date,
		metrics, dimensions, filters, created_at, updated_at)
	VALUES
		(:id, :userId, :sourceId, :name, :description, :startDate, :endDate,
		:metrics, :dimensions, :filters, :createdAt, :updatedAt)`

	err := ExecNamed(ctx, rs.db, query, map[string]any{
		"id":          report.ID,
		"userId":      report.UserID,
		"sourceId":    report.SourceID,
		"name":        report.Name,
		"description": report.Description,
		"startDate":   report.StartDate,
		"endDate":     report.EndDate,
		"metrics":     report.Metrics,
		"dimensions":  report.Dimensions,
		"filters":     report.Filters,
		"createdAt":   report.CreatedAt,
		"updatedAt":   report.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("can't add analytics report: %w", err)
	}
	return report, nil
}

func (rs *reportsStore) GetReportById(ctx context.Context, id string) (*entity.Report, error) {
	query := `SELECT * FROM analytics_reports WHERE id = :id`
	report, err := QueryNamedOne[entity.Report](ctx, rs.db, query, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrNotFound
		}
		return nil, fmt.Errorf("can't get analytics report: %w", err)
	}
	return &report, nil
}

func (rs *reportsStore) ListReportsWithSources(ctx context.Context, userID string) ([]entity.ReportWithSource, error) {
	query := `
	SELECT r.*, s.name AS source_name
	FROM analytics_reports r
	JOIN analytics_sources s ON s.id = r.source_id
	WHERE r.user_id = :userId
	ORDER BY r.created_at DESC`

	reports, err := QueryListNamed[entity.ReportWithSource](ctx, rs.db, query, map[string]any{
		"userId": userID,
	})
	if err != nil {
		return nil, fmt.Errorf("can't list analytics reports: %w", err)
	}
	return reports, nil
}

func (rs *reportsStore) DeleteReportById(ctx context.Context, id, userID string) error {
	query := `DELETE FROM analytics_reports WHERE id = :id AND user_id = :userId`
	affected, err := ExecNamedAffected(ctx, rs.db, query, map[string]any{
		"id":     id,
		"userId": userID,
	})
	if err != nil {
		return fmt.Errorf("can't delete analytics report: %w", err)
	}
	if affected == 0 {
		return gerr.ErrNotFound
	}
	return nil
}
