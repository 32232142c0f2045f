package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/scheduler"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/apiErrors"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/log"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RunBudgetImport runs an import synchronously and returns its report. The run
// outlives a client that disconnects mid-import.
func RunBudgetImport(runner ImportRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			logger = logger.WithField("user_subject", claims.Subject)
		}
		logger.Info("budget import requested")

		report, err := runner.RunImport(context.WithoutCancel(r.Context()))
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, report)
		case errors.Is(err, domain.ErrImportRunning):
			apiErrors.WriteError(w, apiErrors.ErrImportRunning, err.Error(), nil)
		case errors.Is(err, scheduler.ErrSourceNotConfigured):
			apiErrors.WriteError(w, apiErrors.ErrSourceNotSet, err.Error(), nil)
		case errors.Is(err, domain.ErrSinkUnavailable):
			apiErrors.WriteError(w, apiErrors.ErrDatabaseDown, err.Error(), reportDetails(report))
		default:
			logrus.WithError(err).Warn("budget import failed")
			apiErrors.WriteError(w, apiErrors.ErrImportFailed, err.Error(), reportDetails(report))
		}
	}
}

// TriggerBudgetImport starts an import in the background and answers 202
// straight away; progress is read from the status route.
func TriggerBudgetImport(runner ImportRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			logger = logger.WithField("user_subject", claims.Subject)
		}
		logger.Info("background budget import requested")

		err := runner.TriggerManualSync()
		switch {
		case err == nil:
			writeJSON(w, http.StatusAccepted, map[string]string{
				"message": "budget import started",
				"status":  "/v1/imports/budget/status",
			})
		case errors.Is(err, domain.ErrImportRunning):
			apiErrors.WriteError(w, apiErrors.ErrImportRunning, err.Error(), nil)
		case errors.Is(err, scheduler.ErrSourceNotConfigured):
			apiErrors.WriteError(w, apiErrors.ErrSourceNotSet, err.Error(), nil)
		default:
			apiErrors.WriteError(w, apiErrors.ErrImportFailed, err.Error(), nil)
		}
	}
}

func GetBudgetImportStatus(runner ImportRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, runner.GetStatus())
	}
}

func reportDetails(report *domain.ImportReport) any {
	if report == nil {
		return nil
	}
	return report
}
