package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/api/handler/mocks"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/api/handler/router"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/config"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/scheduler"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/usecases/importing"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/middleware"
)

func withRole(r *http.Request, roleID int) *http.Request {
	claims := &domain.Claims{RoleID: roleID}
	claims.Subject = "ops@cascadia.test"
	return r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyUser, claims))
}

func TestHealthcheckHandler(t *testing.T) {
	t.Run("no database", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HealthcheckHandler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("database down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockPinger(ctrl)
		db.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		rec := httptest.NewRecorder()
		HealthcheckHandler(db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"database":"unreachable"`)
	})
}

func TestRunBudgetImport(t *testing.T) {
	report := &domain.ImportReport{RunID: "abc123", Success: true, RowsAccepted: 365}

	tests := []struct {
		name       string
		report     *domain.ImportReport
		err        error
		wantStatus int
		wantBody   string
	}{
		{"success", report, nil, http.StatusOK, `"run_id":"abc123"`},
		{"already running", nil, domain.ErrImportRunning, http.StatusConflict, "IMP_001"},
		{"no source", nil, scheduler.ErrSourceNotConfigured, http.StatusUnprocessableEntity, "IMP_003"},
		{
			"sink unavailable",
			&domain.ImportReport{RunID: "abc123"},
			&importing.ImportError{Err: domain.ErrSinkUnavailable, Stage: importing.StagePersistHistorical},
			http.StatusServiceUnavailable,
			"SRV_003",
		},
		{
			"no stores",
			&domain.ImportReport{RunID: "abc123"},
			&importing.ImportError{Err: domain.ErrNoStoreColumns, Stage: importing.StageDiscover},
			http.StatusUnprocessableEntity,
			"IMP_002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockImportRunner(ctrl)
			runner.EXPECT().RunImport(gomock.Any()).Return(tt.report, tt.err)

			rec := httptest.NewRecorder()
			req := withRole(httptest.NewRequest(http.MethodPost, "/v1/imports/budget/run", nil), domain.RoleAdmin)
			RunBudgetImport(runner).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestRunBudgetImport_OutlivesClientDisconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockImportRunner(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner.EXPECT().RunImport(gomock.Any()).DoAndReturn(func(runCtx context.Context) (*domain.ImportReport, error) {
		cancel()
		assert.Error(t, ctx.Err())
		assert.NoError(t, runCtx.Err())
		return &domain.ImportReport{RunID: "abc123", Success: true}, nil
	})

	req := withRole(httptest.NewRequest(http.MethodPost, "/v1/imports/budget/run", nil).WithContext(ctx), domain.RoleAdmin)
	rec := httptest.NewRecorder()
	RunBudgetImport(runner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTriggerBudgetImport(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"started", nil, http.StatusAccepted, "budget import started"},
		{"already running", domain.ErrImportRunning, http.StatusConflict, "IMP_001"},
		{"no source", scheduler.ErrSourceNotConfigured, http.StatusUnprocessableEntity, "IMP_003"},
		{"other failure", errors.New("scheduler stopped"), http.StatusUnprocessableEntity, "IMP_002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockImportRunner(ctrl)
			runner.EXPECT().TriggerManualSync().Return(tt.err)

			rec := httptest.NewRecorder()
			req := withRole(httptest.NewRequest(http.MethodPost, "/v1/imports/budget/trigger", nil), domain.RoleAdmin)
			TriggerBudgetImport(runner).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestBudgetImportsRoutes(t *testing.T) {
	writable := &config.Config{Safety: config.Safety{AllowWrites: true}}

	t.Run("supervisor cannot run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockImportRunner(ctrl)
		rt := router.New(router.WithRoutes(BudgetImports(runner, writable)...))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, withRole(httptest.NewRequest(http.MethodPost, "/v1/imports/budget/run", nil), domain.RoleSupervisor))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "AUTH_003")
	})

	t.Run("writes disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockImportRunner(ctrl)
		rt := router.New(router.WithRoutes(BudgetImports(runner, &config.Config{})...))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, withRole(httptest.NewRequest(http.MethodPost, "/v1/imports/budget/run", nil), domain.RoleAdmin))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "WRITES_DISABLED")
	})

	t.Run("admin triggers in background", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockImportRunner(ctrl)
		runner.EXPECT().TriggerManualSync().Return(nil)
		rt := router.New(router.WithRoutes(BudgetImports(runner, writable)...))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, withRole(httptest.NewRequest(http.MethodPost, "/v1/imports/budget/trigger", nil), domain.RoleAdmin))

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("supervisor cannot trigger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockImportRunner(ctrl)
		rt := router.New(router.WithRoutes(BudgetImports(runner, writable)...))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, withRole(httptest.NewRequest(http.MethodPost, "/v1/imports/budget/trigger", nil), domain.RoleSupervisor))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("viewer reads status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockImportRunner(ctrl)
		runner.EXPECT().GetStatus().Return(map[string]any{"running": true})
		rt := router.New(router.WithRoutes(BudgetImports(runner, writable)...))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, withRole(httptest.NewRequest(http.MethodGet, "/v1/imports/budget/status", nil), domain.RoleViewer))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"running":true}`, rec.Body.String())
	})

	t.Run("status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockImportRunner(ctrl)
		runner.EXPECT().GetStatus().Return(map[string]any{"running": false})
		rt := router.New(router.WithRoutes(BudgetImports(runner, writable)...))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, withRole(httptest.NewRequest(http.MethodGet, "/v1/imports/budget/status", nil), domain.RoleSupervisor))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"running":false}`, rec.Body.String())
	})
}

func TestGetBudgetSummary(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockBudgetSummarizer(ctrl)
		service.EXPECT().BudgetSummary(gomock.Any(), 5).Return([]domain.StoreBudgetSummary{
			{StoreName: "Cascadia Colwood", Records: 2, TotalSales: 2500, TotalBudget: 2000, BudgetAttainment: 125,
				EarliestDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), LatestDate: time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)},
		}, nil)

		rec := httptest.NewRecorder()
		GetBudgetSummary(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/budget/summary", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"store_name":"Cascadia Colwood"`)
		assert.Contains(t, rec.Body.String(), `"limit":5`)
	})

	t.Run("explicit limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockBudgetSummarizer(ctrl)
		service.EXPECT().BudgetSummary(gomock.Any(), 0).Return(nil, nil)

		rec := httptest.NewRecorder()
		GetBudgetSummary(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/budget/summary?limit=0", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	for _, raw := range []string{"abc", "-1", fmt.Sprint(maxSummaryLimit + 1)} {
		t.Run("invalid limit "+raw, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockBudgetSummarizer(ctrl)

			rec := httptest.NewRecorder()
			GetBudgetSummary(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/budget/summary?limit="+raw, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VAL_003")
		})
	}

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockBudgetSummarizer(ctrl)
		service.EXPECT().BudgetSummary(gomock.Any(), 5).Return(nil, errors.New("relation does not exist"))

		rec := httptest.NewRecorder()
		GetBudgetSummary(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/budget/summary", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
