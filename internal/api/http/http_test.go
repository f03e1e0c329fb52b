package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pulsemetrics/analytics-manager/internal/analytics/synthetic"
	"github.com/pulsemetrics/analytics-manager/internal/apisrv/analytics"
	"github.com/pulsemetrics/analytics-manager/internal/apisrv/auth"
	"github.com/pulsemetrics/analytics-manager/internal/dependency/mocks"
	"github.com/pulsemetrics/analytics-manager/internal/entity"
	gerr "github.com/pulsemetrics/analytics-manager/internal/errors"
)

type testEnv struct {
	handler http.Handler
	sources *mocks.Sources
	reports *mocks.Reports
}

// memUsers is a map-backed user store so auth flows run for real.
type memUsers struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func (m *memUsers) AddUser(_ context.Context, email, pwHash string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[email]; ok {
		return nil, gerr.ErrAlreadyExists
	}
	u := &entity.User{
		ID:           fmt.Sprintf("user-%d", len(m.users)+1),
		Email:        email,
		PasswordHash: pwHash,
		CreatedAt:    time.Now(),
	}
	m.users[email] = u
	return u, nil
}

func (m *memUsers) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, gerr.ErrNotFound
	}
	return u, nil
}

func newTestEnv(t *testing.T) testEnv {
	users := &memUsers{users: map[string]*entity.User{}}
	authServer, err := auth.New(&auth.Config{
		JWTSecret:                "test-secret",
		PasswordHasherSaltSize:   8,
		PasswordHasherIterations: 1000,
		JWTTTL:                   "1h",
	}, users)
	require.NoError(t, err)

	repo := mocks.NewRepository(t)
	sources := mocks.NewSources(t)
	reports := mocks.NewReports(t)
	repo.EXPECT().Sources().Return(sources).Maybe()
	repo.EXPECT().Reports().Return(reports).Maybe()
	repo.EXPECT().Now().Return(time.Now()).Maybe()

	analyticsServer := analytics.New(repo, synthetic.New())

	srv := New(&Config{Address: "localhost", Port: "8081"})
	return testEnv{
		handler: srv.Router(authServer, analyticsServer),
		sources: sources,
		reports: reports,
	}
}

func (e testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e testEnv) registerUser(t *testing.T, email string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthz(t *testing.T) {
	e := newTestEnv(t)
	rec := e.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	e := newTestEnv(t)
	e.registerUser(t, "dana@example.com")

	rec := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "dana@example.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "dana@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "dana@example.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRunReportRequiresAuth(t *testing.T) {
	e := newTestEnv(t)

	rec := e.do(t, http.MethodPost, "/api/analytics/run", "", map[string]string{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = e.do(t, http.MethodPost, "/api/analytics/run", "not-a-token", map[string]string{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRunReportEndToEnd(t *testing.T) {
	e := newTestEnv(t)
	token := e.registerUser(t, "dana@example.com")

	src := &entity.Source{
		ID:            "src-1",
		UserID:        "user-1",
		Name:          "Main site",
		PropertyID:    "123456",
		SyncFrequency: entity.SyncDaily,
		Credentials:   entity.Credentials{"client_email": "svc@example.com"},
	}
	e.sources.EXPECT().GetSourceById(mock.Anything, "src-1").Return(src, nil)
	e.sources.EXPECT().UpdateLastSynced(mock.Anything, "src-1", mock.Anything).Return(nil)

	rec := e.do(t, http.MethodPost, "/api/analytics/run", token, entity.RunReportRequest{
		SourceID:  "src-1",
		StartDate: "2024-03-01",
		EndDate:   "2024-03-03",
		Metrics:   []string{entity.MetricPageviews},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp entity.RunReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.DimensionHeaders, 1)
	assert.Equal(t, "date", resp.DimensionHeaders[0].Name)
	require.Len(t, resp.MetricHeaders, 1)
	assert.Equal(t, "pageviews", resp.MetricHeaders[0].Name)
	assert.Equal(t, entity.MetricTypeInteger, resp.MetricHeaders[0].Type)

	require.Len(t, resp.Rows, 3)
	wantDates := []string{"2024-03-01", "2024-03-02", "2024-03-03"}
	for i, row := range resp.Rows {
		require.Len(t, row.DimensionValues, 1)
		assert.Equal(t, wantDates[i], row.DimensionValues[0].Value)
		require.Len(t, row.MetricValues, 1)
		n, err := strconv.Atoi(row.MetricValues[0].Value)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 500)
		assert.Less(t, n, 3500)
	}
}

func TestRunReportOpaqueNotFound(t *testing.T) {
	e := newTestEnv(t)
	token := e.registerUser(t, "dana@example.com")

	// Another user's source is reported exactly like a missing one.
	e.sources.EXPECT().GetSourceById(mock.Anything, "src-foreign").Return(&entity.Source{
		ID:          "src-foreign",
		UserID:      "user-2",
		Credentials: entity.Credentials{"client_email": "svc@example.com"},
	}, nil).Once()
	recForeign := e.do(t, http.MethodPost, "/api/analytics/run", token, entity.RunReportRequest{
		SourceID:  "src-foreign",
		StartDate: "2024-03-01",
		EndDate:   "2024-03-03",
	})
	assert.Equal(t, http.StatusNotFound, recForeign.Code)

	e.sources.EXPECT().GetSourceById(mock.Anything, "src-missing").Return(nil, gerr.ErrNotFound).Once()
	recMissing := e.do(t, http.MethodPost, "/api/analytics/run", token, entity.RunReportRequest{
		SourceID:  "src-missing",
		StartDate: "2024-03-01",
		EndDate:   "2024-03-03",
	})
	assert.Equal(t, http.StatusNotFound, recMissing.Code)

	assert.JSONEq(t, recForeign.Body.String(), recMissing.Body.String())
}

func TestRunReportBadRequests(t *testing.T) {
	e := newTestEnv(t)
	token := e.registerUser(t, "dana@example.com")

	rec := e.do(t, http.MethodPost, "/api/analytics/run", token, entity.RunReportRequest{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-03",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodPost, "/api/analytics/run", token, entity.RunReportRequest{
		SourceID:  "src-1",
		StartDate: "not-a-date",
		EndDate:   "2024-03-03",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	src := &entity.Source{ID: "src-1", UserID: "user-1"}
	e.sources.EXPECT().GetSourceById(mock.Anything, "src-1").Return(src, nil).Once()
	rec = e.do(t, http.MethodPost, "/api/analytics/run", token, entity.RunReportRequest{
		SourceID:  "src-1",
		StartDate: "2024-03-01",
		EndDate:   "2024-03-03",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing credentials")
}

func TestSourcesCRUD(t *testing.T) {
	e := newTestEnv(t)
	token := e.registerUser(t, "dana@example.com")

	created := &entity.Source{
		ID:            "src-1",
		UserID:        "user-1",
		Name:          "Main site",
		PropertyID:    "123456",
		SyncFrequency: entity.SyncDaily,
	}
	e.sources.EXPECT().AddSource(mock.Anything, "user-1", mock.Anything).Return(created, nil)
	rec := e.do(t, http.MethodPost, "/api/sources", token, entity.SourceInsert{
		Name:       "Main site",
		PropertyID: "123456",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	e.sources.EXPECT().ListSources(mock.Anything, "user-1").Return([]entity.Source{*created}, nil)
	rec = e.do(t, http.MethodGet, "/api/sources", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []entity.Source
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "src-1", list[0].ID)

	e.sources.EXPECT().GetSourceById(mock.Anything, "src-1").Return(created, nil)
	rec = e.do(t, http.MethodGet, "/api/sources/src-1", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	e.sources.EXPECT().DeleteSourceById(mock.Anything, "src-1", "user-1").Return(nil)
	rec = e.do(t, http.MethodDelete, "/api/sources/src-1", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestReportsCRUD(t *testing.T) {
	e := newTestEnv(t)
	token := e.registerUser(t, "dana@example.com")

	src := &entity.Source{ID: "src-1", UserID: "user-1"}
	start, err := entity.ParseDate("2024-02-01")
	require.NoError(t, err)
	end, err := entity.ParseDate("2024-02-07")
	require.NoError(t, err)

	created := &entity.Report{
		ID:         "rep-1",
		UserID:     "user-1",
		SourceID:   "src-1",
		Name:       "Weekly traffic",
		StartDate:  start,
		EndDate:    end,
		Metrics:    entity.StringList{entity.MetricSessions},
		Dimensions: entity.StringList{entity.DimensionDate},
	}

	e.sources.EXPECT().GetSourceById(mock.Anything, "src-1").Return(src, nil)
	e.reports.EXPECT().AddReport(mock.Anything, "user-1", mock.Anything).Return(created, nil)
	rec := e.do(t, http.MethodPost, "/api/reports", token, entity.ReportInsert{
		SourceID:   "src-1",
		Name:       "Weekly traffic",
		StartDate:  start,
		EndDate:    end,
		Metrics:    entity.StringList{entity.MetricSessions},
		Dimensions: entity.StringList{entity.DimensionDate},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	e.reports.EXPECT().ListReportsWithSources(mock.Anything, "user-1").Return([]entity.ReportWithSource{
		{Report: *created, SourceName: "Main site"},
	}, nil)
	rec = e.do(t, http.MethodGet, "/api/reports", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []entity.ReportWithSource
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Main site", list[0].SourceName)
	assert.Equal(t, "2024-02-01", list[0].StartDate.String())

	e.reports.EXPECT().GetReportById(mock.Anything, "rep-1").Return(created, nil)
	rec = e.do(t, http.MethodGet, "/api/reports/rep-1", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	e.reports.EXPECT().DeleteReportById(mock.Anything, "rep-1", "user-1").Return(nil)
	rec = e.do(t, http.MethodDelete, "/api/reports/rep-1", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
