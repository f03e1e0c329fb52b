package analytics

import (
	"context"
	"fmt"

	"github.com/pulsemetrics/analytics-manager/internal/entity"
	gerr "github.com/pulsemetrics/analytics-manager/internal/errors"
)

// Resolve determines the effective query parameters for a request. A report
// reference takes full precedence: when reportId is set, every parameter
// comes from the stored report and the ad hoc fields are ignored. Without a
// report, the ad hoc parameters are used with activeUsers/date defaults.
func (s *Server) Resolve(ctx context.Context, userID string, req *entity.RunReportRequest) (entity.QueryParameters, error) {
	if req.ReportID != "" {
		report, err := s.repo.Reports().GetReportById(ctx, req.ReportID)
		if err != nil {
			return entity.QueryParameters{}, err
		}
		if report.UserID != userID {
			return entity.QueryParameters{}, gerr.ErrNotFound
		}
		return entity.QueryParameters{
			SourceID:   report.SourceID,
			StartDate:  report.StartDate,
			EndDate:    report.EndDate,
			Metrics:    report.Metrics,
			Dimensions: report.Dimensions,
			Filters:    report.Filters,
		}, nil
	}

	if req.SourceID == "" {
		return entity.QueryParameters{}, gerr.ErrMissingSource
	}

	startDate, err := entity.ParseDate(req.StartDate)
	if err != nil {
		return entity.QueryParameters{}, fmt.Errorf("%w: %v", gerr.ErrMalformedRequest, err)
	}
	endDate, err := entity.ParseDate(req.EndDate)
	if err != nil {
		return entity.QueryParameters{}, fmt.Errorf("%w: %v", gerr.ErrMalformedRequest, err)
	}

	metrics := req.Metrics
	if len(metrics) == 0 {
		metrics = []string{entity.MetricActiveUsers}
	}
	dimensions := req.Dimensions
	if len(dimensions) == 0 {
		dimensions = []string{entity.DimensionDate}
	}

	return entity.QueryParameters{
		SourceID:   req.SourceID,
		StartDate:  startDate,
		EndDate:    endDate,
		Metrics:    metrics,
		Dimensions: dimensions,
		Filters:    req.Filters,
	}, nil
}
