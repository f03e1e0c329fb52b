package analytics

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/pulsemetrics/analytics-manager/internal/dependency"
	"github.com/pulsemetrics/analytics-manager/internal/entity"
	gerr "github.com/pulsemetrics/analytics-manager/internal/errors"
)

// Server implements the analytics service: query resolution, source
// authorization, report generation and the source/report record operations.
type Server struct {
	repo   dependency.Repository
	client dependency.AnalyticsClient
}

// New creates a new analytics server.
func New(repo dependency.Repository, client dependency.AnalyticsClient) *Server {
	return &Server{
		repo:   repo,
		client: client,
	}
}

// RunReport resolves the effective query parameters, authorizes the request
// against the owning source and returns the generated result table. On
// success the source's last-synced timestamp is bumped best-effort: a failed
// update is logged but never fails the response.
func (s *Server) RunReport(ctx context.Context, userID string, req *entity.RunReportRequest) (*entity.RunReportResponse, error) {
	params, err := s.Resolve(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	src, err := s.authorize(ctx, params.SourceID, userID)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.RunReport(ctx, src, params)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Sources().UpdateLastSynced(ctx, src.ID, s.repo.Now()); err != nil {
		slog.Default().ErrorContext(ctx, "failed to update last synced",
			slog.String("source_id", src.ID),
			slog.String("err", err.Error()))
	}

	return resp, nil
}

// authorize looks up the source and checks ownership and credentials. A
// missing source and a source owned by someone else return the same error so
// existence of other users' sources does not leak.
func (s *Server) authorize(ctx context.Context, sourceID, userID string) (*entity.Source, error) {
	src, err := s.repo.Sources().GetSourceById(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	if src.UserID != userID {
		return nil, gerr.ErrNotFound
	}
	if src.Credentials.Empty() {
		return nil, gerr.ErrMissingCredentials
	}
	return src, nil
}

// AddSource creates a source for the caller.
func (s *Server) AddSource(ctx context.Context, userID string, src *entity.SourceInsert) (*entity.Source, error) {
	if src.Name == "" || src.PropertyID == "" {
		return nil, fmt.Errorf("%w: name and propertyId are required", gerr.ErrMalformedRequest)
	}
	if src.SyncFrequency == "" {
		src.SyncFrequency = entity.SyncDaily
	}
	if !src.SyncFrequency.Valid() {
		return nil, fmt.Errorf("%w: unknown sync frequency %q", gerr.ErrMalformedRequest, src.SyncFrequency)
	}
	return s.repo.Sources().AddSource(ctx, userID, src)
}

// ListSources returns the caller's sources.
func (s *Server) ListSources(ctx context.Context, userID string) ([]entity.Source, error) {
	return s.repo.Sources().ListSources(ctx, userID)
}

// GetSource returns one of the caller's sources.
func (s *Server) GetSource(ctx context.Context, userID, id string) (*entity.Source, error) {
	src, err := s.repo.Sources().GetSourceById(ctx, id)
	if err != nil {
		return nil, err
	}
	if src.UserID != userID {
		return nil, gerr.ErrNotFound
	}
	return src, nil
}

// DeleteSource deletes one of the caller's sources.
func (s *Server) DeleteSource(ctx context.Context, userID, id string) error {
	return s.repo.Sources().DeleteSourceById(ctx, id, userID)
}

// AddReport creates a saved report. The referenced source must belong to
// the caller and the metric and dimension lists must be non-empty.
func (s *Server) AddReport(ctx context.Context, userID string, rep *entity.ReportInsert) (*entity.Report, error) {
	if rep.Name == "" || rep.SourceID == "" {
		return nil, fmt.Errorf("%w: name and sourceId are required", gerr.ErrMalformedRequest)
	}
	if len(rep.Metrics) == 0 || len(rep.Dimensions) == 0 {
		return nil, fmt.Errorf("%w: metrics and dimensions must be non-empty", gerr.ErrMalformedRequest)
	}
	if rep.StartDate.IsZero() || rep.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate and endDate are required", gerr.ErrMalformedRequest)
	}

	src, err := s.repo.Sources().GetSourceById(ctx, rep.SourceID)
	if err != nil {
		return nil, err
	}
	if src.UserID != userID {
		return nil, gerr.ErrNotFound
	}

	return s.repo.Reports().AddReport(ctx, userID, rep)
}

// ListReports returns the caller's reports joined with source names.
func (s *Server) ListReports(ctx context.Context, userID string) ([]entity.ReportWithSource, error) {
	return s.repo.Reports().ListReportsWithSources(ctx, userID)
}

// GetReport returns one of the caller's reports.
func (s *Server) GetReport(ctx context.Context, userID, id string) (*entity.Report, error) {
	report, err := s.repo.Reports().GetReportById(ctx, id)
	if err != nil {
		return nil, err
	}
	if report.UserID != userID {
		return nil, gerr.ErrNotFound
	}
	return report, nil
}

// DeleteReport deletes one of the caller's reports.
func (s *Server) DeleteReport(ctx context.Context, userID, id string) error {
	return s.repo.Reports().DeleteReportById(ctx, id, userID)
}
