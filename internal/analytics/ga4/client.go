package ga4

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"log/slog"

	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/option"

	"github.com/pulsemetrics/analytics-manager/internal/entity"
	gerr "github.com/pulsemetrics/analytics-manager/internal/errors"
)

// Config holds GA4 client configuration.
type Config struct {
	Enabled bool `mapstructure:"enabled"`
}

// Client runs reports against the GA4 Data API using the service account
// credentials attached to each source. Token signing is delegated to the
// Google SDK.
type Client struct {
	enabled bool
}

// NewClient creates a new GA4 client.
func NewClient(ctx context.Context, cfg *Config) *Client {
	if cfg == nil || !cfg.Enabled {
		slog.Default().InfoContext(ctx, "GA4 analytics disabled")
		return &Client{enabled: false}
	}
	return &Client{enabled: true}
}

// Enabled reports whether the client performs real API calls.
func (c *Client) Enabled() bool {
	return c.enabled
}

// Metric and dimension identifiers exposed to callers differ from the GA4
// Data API names; unmapped identifiers pass through unchanged.
var apiMetricNames = map[string]string{
	entity.MetricActiveUsers:        "activeUsers",
	entity.MetricNewUsers:           "newUsers",
	entity.MetricSessions:           "sessions",
	entity.MetricPageviews:          "screenPageViews",
	entity.MetricBounceRate:         "bounceRate",
	entity.MetricAvgSessionDuration: "averageSessionDuration",
	entity.MetricPagesPerSession:    "screenPageViewsPerSession",
	entity.MetricConversionRate:     "sessionConversionRate",
}

var apiDimensionNames = map[string]string{
	entity.DimensionDate:    "date",
	entity.DimensionWeek:    "week",
	entity.DimensionMonth:   "month",
	entity.DimensionSource:  "sessionSource",
	entity.DimensionChannel: "sessionDefaultChannelGroup",
	entity.DimensionCountry: "country",
	entity.DimensionDevice:  "deviceCategory",
	entity.DimensionBrowser: "browser",
}

// RunReport executes a GA4 report for the resolved parameters against the
// source's property.
func (c *Client) RunReport(ctx context.Context, src *entity.Source, params entity.QueryParameters) (*entity.RunReportResponse, error) {
	if !c.enabled {
		return nil, fmt.Errorf("%w: ga4 client disabled", gerr.ErrUpstream)
	}

	credsJSON, err := json.Marshal(src.Credentials)
	if err != nil {
		return nil, fmt.Errorf("marshal source credentials: %w", err)
	}

	service, err := analyticsdata.NewService(ctx, option.WithCredentialsJSON(credsJSON))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create GA4 service: %v", gerr.ErrUpstream, err)
	}

	req := &analyticsdata.RunReportRequest{
		DateRanges: []*analyticsdata.DateRange{
			{
				StartDate: params.StartDate.Format("2006-01-02"),
				EndDate:   params.EndDate.Format("2006-01-02"),
			},
		},
	}
	for _, dim := range params.Dimensions {
		req.Dimensions = append(req.Dimensions, &analyticsdata.Dimension{Name: apiDimensionName(dim)})
	}
	for _, metric := range params.Metrics {
		req.Metrics = append(req.Metrics, &analyticsdata.Metric{Name: apiMetricName(metric)})
	}
	if expr := filterExpression(params.Filters); expr != nil {
		req.DimensionFilter = expr
	}

	resp, err := service.Properties.RunReport(fmt.Sprintf("properties/%s", src.PropertyID), req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to run GA4 report: %v", gerr.ErrUpstream, err)
	}

	return convertResponse(ctx, params, resp), nil
}

func apiMetricName(metric string) string {
	if name, ok := apiMetricNames[metric]; ok {
		return name
	}
	return metric
}

func apiDimensionName(dimension string) string {
	if name, ok := apiDimensionNames[dimension]; ok {
		return name
	}
	return dimension
}

func filterExpression(filters entity.Filters) *analyticsdata.FilterExpression {
	var exprs []*analyticsdata.FilterExpression
	for _, key := range []string{entity.FilterCountry, entity.FilterDevice} {
		value, ok := filters[key]
		if !ok {
			continue
		}
		exprs = append(exprs, &analyticsdata.FilterExpression{
			Filter: &analyticsdata.Filter{
				FieldName: apiDimensionName(key),
				StringFilter: &analyticsdata.StringFilter{
					MatchType: "EXACT",
					Value:     value,
				},
			},
		})
	}
	switch len(exprs) {
	case 0:
		return nil
	case 1:
		return exprs[0]
	default:
		return &analyticsdata.FilterExpression{
			AndGroup: &analyticsdata.FilterExpressionList{Expressions: exprs},
		}
	}
}

// convertResponse reshapes the API response into the wire format chart
// consumers expect. Headers carry the caller's metric and dimension names,
// not the API ones, so saved reports render the same on both paths.
func convertResponse(ctx context.Context, params entity.QueryParameters, resp *analyticsdata.RunReportResponse) *entity.RunReportResponse {
	out := &entity.RunReportResponse{
		DimensionHeaders: make([]entity.DimensionHeader, 0, len(params.Dimensions)),
		MetricHeaders:    make([]entity.MetricHeader, 0, len(params.Metrics)),
		Rows:             []entity.ReportRow{},
	}
	for _, dim := range params.Dimensions {
		out.DimensionHeaders = append(out.DimensionHeaders, entity.DimensionHeader{Name: dim})
	}
	for _, metric := range params.Metrics {
		out.MetricHeaders = append(out.MetricHeaders, entity.MetricHeader{
			Name: metric,
			Type: entity.MetricTypeOf(metric),
		})
	}

	for _, row := range resp.Rows {
		if len(row.DimensionValues) < len(params.Dimensions) || len(row.MetricValues) < len(params.Metrics) {
			continue
		}
		outRow := entity.ReportRow{
			DimensionValues: make([]entity.DimensionValue, 0, len(params.Dimensions)),
			MetricValues:    make([]entity.MetricValue, 0, len(params.Metrics)),
		}
		for i, dim := range params.Dimensions {
			value := row.DimensionValues[i].Value
			if dim == entity.DimensionDate {
				if date, err := time.Parse("20060102", value); err == nil {
					value = date.Format("2006-01-02")
				} else {
					slog.Default().WarnContext(ctx, "failed to parse GA4 date",
						slog.String("date", value),
						slog.String("err", err.Error()))
				}
			}
			outRow.DimensionValues = append(outRow.DimensionValues, entity.DimensionValue{Value: value})
		}
		for i := range params.Metrics {
			outRow.MetricValues = append(outRow.MetricValues, entity.MetricValue{Value: row.MetricValues[i].Value})
		}
		out.Rows = append(out.Rows, outRow)
	}

	return out
}
