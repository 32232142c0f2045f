package handler

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/usecases/reporting"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/apiErrors"
)

const maxSummaryLimit = 100

func GetBudgetSummary(service BudgetSummarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := reporting.DefaultSummaryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 || n > maxSummaryLimit {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit must be an integer between 0 and 100", nil)
				return
			}
			limit = n
		}

		summaries, err := service.BudgetSummary(r.Context(), limit)
		if err != nil {
			logrus.WithError(err).Error("error building budget summary")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "could not build budget summary", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"limit":  limit,
			"stores": summaries,
		})
	}
}
