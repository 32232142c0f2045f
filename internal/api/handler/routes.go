package handler

import (
	"net/http"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/api/handler/router"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/config"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/metrics"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: m.Handler(),
		},
	}
}

func BudgetImports(runner ImportRunner, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/imports/budget/run",
			Method:      http.MethodPost,
			Handler:     RunBudgetImport(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(), middleware.WriteGuard(cfg)},
		},
		{
			Path:        "/v1/imports/budget/trigger",
			Method:      http.MethodPost,
			Handler:     TriggerBudgetImport(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(), middleware.WriteGuard(cfg)},
		},
		{
			Path:        "/v1/imports/budget/status",
			Method:      http.MethodGet,
			Handler:     GetBudgetImportStatus(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func BudgetSummary(service BudgetSummarizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/budget/summary",
			Method:      http.MethodGet,
			Handler:     GetBudgetSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
