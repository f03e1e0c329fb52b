package syncworker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pulsemetrics/analytics-manager/internal/dependency/mocks"
	"github.com/pulsemetrics/analytics-manager/internal/entity"
)

func TestSyncDue(t *testing.T) {
	repo := mocks.NewRepository(t)
	sources := mocks.NewSources(t)
	client := mocks.NewAnalyticsClient(t)
	repo.EXPECT().Sources().Return(sources).Maybe()

	due := []entity.Source{
		{
			ID:            "src-with-creds",
			UserID:        "user-1",
			SyncFrequency: entity.SyncDaily,
			Credentials:   entity.Credentials{"client_email": "svc@example.com"},
		},
		{
			ID:            "src-no-creds",
			UserID:        "user-1",
			SyncFrequency: entity.SyncDaily,
		},
	}
	sources.EXPECT().ListSourcesDueForSync(mock.Anything, mock.Anything).Return(due, nil)

	var got entity.QueryParameters
	client.EXPECT().RunReport(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, src *entity.Source, params entity.QueryParameters) {
			assert.Equal(t, "src-with-creds", src.ID)
			got = params
		}).
		Return(&entity.RunReportResponse{}, nil).
		Once()

	// Only the source that actually synced gets its timestamp bumped.
	sources.EXPECT().UpdateLastSynced(mock.Anything, "src-with-creds", mock.Anything).Return(nil).Once()

	w := New(repo, client, nil)
	require.NoError(t, w.syncDue(context.Background()))

	assert.Equal(t, []string{entity.MetricActiveUsers}, got.Metrics)
	assert.Equal(t, []string{entity.DimensionDate}, got.Dimensions)
	assert.Equal(t, 8, got.Days())
}

func TestSyncDueNothingDue(t *testing.T) {
	repo := mocks.NewRepository(t)
	sources := mocks.NewSources(t)
	client := mocks.NewAnalyticsClient(t)
	repo.EXPECT().Sources().Return(sources).Maybe()

	sources.EXPECT().ListSourcesDueForSync(mock.Anything, mock.Anything).Return(nil, nil)

	w := New(repo, client, nil)
	require.NoError(t, w.syncDue(context.Background()))
}

func TestStartStop(t *testing.T) {
	repo := mocks.NewRepository(t)
	sources := mocks.NewSources(t)
	client := mocks.NewAnalyticsClient(t)
	repo.EXPECT().Sources().Return(sources).Maybe()
	sources.EXPECT().ListSourcesDueForSync(mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	w := New(repo, client, nil)
	require.NoError(t, w.Start(context.Background()))
	assert.Error(t, w.Start(context.Background()))
	require.NoError(t, w.Stop())
	assert.Error(t, w.Stop())
}
