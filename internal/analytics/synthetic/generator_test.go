package synthetic

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsemetrics/analytics-manager/internal/entity"
)

func mustDate(t *testing.T, s string) entity.Date {
	t.Helper()
	d, err := entity.ParseDate(s)
	require.NoError(t, err)
	return d
}

func testParams(t *testing.T, start, end string, metrics, dimensions []string, filters entity.Filters) entity.QueryParameters {
	t.Helper()
	return entity.QueryParameters{
		SourceID:   "src-1",
		StartDate:  mustDate(t, start),
		EndDate:    mustDate(t, end),
		Metrics:    metrics,
		Dimensions: dimensions,
		Filters:    filters,
	}
}

func TestDateRowsPerDay(t *testing.T) {
	g := New()
	params := testParams(t, "2024-01-01", "2024-01-05",
		[]string{entity.MetricActiveUsers}, []string{entity.DimensionDate}, nil)

	resp, err := g.RunReport(context.Background(), nil, params)
	require.NoError(t, err)

	require.Len(t, resp.Rows, 5)
	wantDates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}
	for i, row := range resp.Rows {
		require.Len(t, row.DimensionValues, 1)
		assert.Equal(t, wantDates[i], row.DimensionValues[0].Value)
	}
}

func TestDateSingleDay(t *testing.T) {
	g := New()
	params := testParams(t, "2024-03-15", "2024-03-15",
		[]string{entity.MetricSessions}, []string{entity.DimensionDate}, nil)

	resp, err := g.RunReport(context.Background(), nil, params)
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "2024-03-15", resp.Rows[0].DimensionValues[0].Value)
}

func TestWeekAndMonthDimensions(t *testing.T) {
	g := New()
	params := testParams(t, "2024-01-01", "2024-01-10",
		[]string{entity.MetricActiveUsers},
		[]string{entity.DimensionDate, entity.DimensionWeek, entity.DimensionMonth}, nil)

	resp, err := g.RunReport(context.Background(), nil, params)
	require.NoError(t, err)
	require.Len(t, resp.Rows, 10)

	// days 1-7 are week 1, days 8-10 week 2
	assert.Equal(t, "Week 1", resp.Rows[0].DimensionValues[1].Value)
	assert.Equal(t, "Week 1", resp.Rows[6].DimensionValues[1].Value)
	assert.Equal(t, "Week 2", resp.Rows[7].DimensionValues[1].Value)
	assert.Equal(t, "January", resp.Rows[0].DimensionValues[2].Value)
}

func TestCategoricalRows(t *testing.T) {
	g := New()
	params := testParams(t, "2024-01-01", "2024-01-31",
		[]string{entity.MetricSessions}, []string{entity.DimensionDevice}, nil)

	resp, err := g.RunReport(context.Background(), nil, params)
	require.NoError(t, err)

	require.Len(t, resp.Rows, 3)
	want := []string{"Desktop", "Mobile", "Tablet"}
	for i, row := range resp.Rows {
		assert.Equal(t, want[i], row.DimensionValues[0].Value)
	}
}

func TestCategoricalRowCounts(t *testing.T) {
	for dim, wantLen := range map[string]int{
		entity.DimensionSource:  6,
		entity.DimensionChannel: 6,
		entity.DimensionCountry: 6,
		entity.DimensionDevice:  3,
		entity.DimensionBrowser: 5,
	} {
		g := New()
		params := testParams(t, "2024-01-01", "2024-01-31",
			[]string{entity.MetricSessions}, []string{dim}, nil)

		resp, err := g.RunReport(context.Background(), nil, params)
		require.NoError(t, err)
		assert.Len(t, resp.Rows, wantLen, "dimension %s", dim)
	}
}

func TestSecondaryDimensionDrawnFromOwnList(t *testing.T) {
	g := New()
	params := testParams(t, "2024-01-01", "2024-01-31",
		[]string{entity.MetricSessions},
		[]string{entity.DimensionDevice, entity.DimensionBrowser}, nil)

	resp, err := g.RunReport(context.Background(), nil, params)
	require.NoError(t, err)
	require.Len(t, resp.Rows, 3)

	browsers := dimensionCategories[entity.DimensionBrowser]
	for _, row := range resp.Rows {
		require.Len(t, row.DimensionValues, 2)
		assert.Contains(t, browsers, row.DimensionValues[1].Value)
	}
}

func TestUnknownPrimaryDimensionYieldsNoRows(t *testing.T) {
	g := New()
	params := testParams(t, "2024-01-01", "2024-01-05",
		[]string{entity.MetricActiveUsers}, []string{"pagePath"}, nil)

	resp, err := g.RunReport(context.Background(), nil, params)
	require.NoError(t, err)
	assert.Empty(t, resp.Rows)
	assert.NotNil(t, resp.Rows)
	// headers still describe the request
	require.Len(t, resp.DimensionHeaders, 1)
	assert.Equal(t, "pagePath", resp.DimensionHeaders[0].Name)
}

func TestMetricHeaderTypes(t *testing.T) {
	g := New()
	params := testParams(t, "2024-01-01", "2024-01-02",
		[]string{entity.MetricBounceRate, entity.MetricActiveUsers, entity.MetricAvgSessionDuration},
		[]string{entity.DimensionDate}, nil)

	resp, err := g.RunReport(context.Background(), nil, params)
	require.NoError(t, err)

	require.Len(t, resp.MetricHeaders, 3)
	assert.Equal(t, entity.MetricHeader{Name: "bounceRate", Type: entity.MetricTypeFloat}, resp.MetricHeaders[0])
	assert.Equal(t, entity.MetricHeader{Name: "activeUsers", Type: entity.MetricTypeInteger}, resp.MetricHeaders[1])
	assert.Equal(t, entity.MetricHeader{Name: "avgSessionDuration", Type: entity.MetricTypeTime}, resp.MetricHeaders[2])
}

func TestMetricRanges(t *testing.T) {
	g := New()
	params := testParams(t, "2024-01-01", "2024-02-19",
		[]string{
			entity.MetricActiveUsers,
			entity.MetricNewUsers,
			entity.MetricSessions,
			entity.MetricPageviews,
			entity.MetricBounceRate,
			entity.MetricAvgSessionDuration,
			entity.MetricPagesPerSession,
			entity.MetricConversionRate,
		},
		[]string{entity.DimensionDate}, nil)

	resp, err := g.RunReport(context.Background(), nil, params)
	require.NoError(t, err)
	require.Len(t, resp.Rows, 50)

	ranges := [][2]float64{
		{100, 1100},
		{50, 550},
		{200, 1700},
		{500, 3500},
		{10, 80},
		{60, 360},
		{1, 6},
		{1, 11},
	}
	for _, row := range resp.Rows {
		require.Len(t, row.MetricValues, 8)
		for i, mv := range row.MetricValues {
			v, err := strconv.ParseFloat(mv.Value, 64)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, ranges[i][0], "metric %d", i)
			assert.Less(t, v, ranges[i][1], "metric %d", i)
		}
	}
}

func TestCountryFilterFactor(t *testing.T) {
	g := New()
	params := testParams(t, "2024-01-01", "2024-02-19",
		[]string{entity.MetricActiveUsers}, []string{entity.DimensionDate},
		entity.Filters{entity.FilterCountry: "France"})

	resp, err := g.RunReport(context.Background(), nil, params)
	require.NoError(t, err)

	for _, row := range resp.Rows {
		v, err := strconv.Atoi(row.MetricValues[0].Value)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 120)
		assert.Less(t, v, 1320)
	}
}

func TestDeviceFilterFactor(t *testing.T) {
	g := New()
	params := testParams(t, "2024-01-01", "2024-02-19",
		[]string{entity.MetricActiveUsers}, []string{entity.DimensionDate},
		entity.Filters{entity.FilterDevice: "mobile"})

	resp, err := g.RunReport(context.Background(), nil, params)
	require.NoError(t, err)

	for _, row := range resp.Rows {
		v, err := strconv.Atoi(row.MetricValues[0].Value)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 80)
		assert.Less(t, v, 880)
	}
}

func TestDeviceFilterOverridesCountry(t *testing.T) {
	g := New()
	params := testParams(t, "2024-01-01", "2024-02-19",
		[]string{entity.MetricActiveUsers}, []string{entity.DimensionDate},
		entity.Filters{entity.FilterCountry: "France", entity.FilterDevice: "mobile"})

	resp, err := g.RunReport(context.Background(), nil, params)
	require.NoError(t, err)

	// the device factor wins; values never reach the country-boosted range
	for _, row := range resp.Rows {
		v, err := strconv.Atoi(row.MetricValues[0].Value)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 80)
		assert.Less(t, v, 880)
	}
}

func TestRateMetricsIgnoreFactor(t *testing.T) {
	g := New()
	params := testParams(t, "2024-01-01", "2024-02-19",
		[]string{entity.MetricBounceRate}, []string{entity.DimensionDate},
		entity.Filters{entity.FilterCountry: "France"})

	resp, err := g.RunReport(context.Background(), nil, params)
	require.NoError(t, err)

	for _, row := range resp.Rows {
		v, err := strconv.ParseFloat(row.MetricValues[0].Value, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 10.0)
		assert.Less(t, v, 80.0)
	}
}

func TestUnrecognizedFilterIgnored(t *testing.T) {
	g := New()
	params := testParams(t, "2024-01-01", "2024-02-19",
		[]string{entity.MetricActiveUsers}, []string{entity.DimensionDate},
		entity.Filters{"browser": "Chrome"})

	resp, err := g.RunReport(context.Background(), nil, params)
	require.NoError(t, err)

	for _, row := range resp.Rows {
		v, err := strconv.Atoi(row.MetricValues[0].Value)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 100)
		assert.Less(t, v, 1100)
	}
}

func TestUnknownMetricIsZero(t *testing.T) {
	g := New()
	params := testParams(t, "2024-01-01", "2024-01-03",
		[]string{"engagementRate"}, []string{entity.DimensionDate}, nil)

	resp, err := g.RunReport(context.Background(), nil, params)
	require.NoError(t, err)

	require.Len(t, resp.Rows, 3)
	for _, row := range resp.Rows {
		assert.Equal(t, "0", row.MetricValues[0].Value)
	}
	assert.Equal(t, entity.MetricTypeInteger, resp.MetricHeaders[0].Type)
}

func TestFloatFormatting(t *testing.T) {
	g := New()
	params := testParams(t, "2024-01-01", "2024-01-20",
		[]string{entity.MetricBounceRate, entity.MetricPagesPerSession},
		[]string{entity.DimensionDate}, nil)

	resp, err := g.RunReport(context.Background(), nil, params)
	require.NoError(t, err)

	for _, row := range resp.Rows {
		for _, mv := range row.MetricValues {
			parts := []rune(mv.Value)
			require.GreaterOrEqual(t, len(parts), 4)
			assert.Equal(t, '.', parts[len(parts)-3], "value %q has no two decimal places", mv.Value)
		}
	}
}
