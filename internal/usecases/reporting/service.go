// Package reporting summarises imported actuals against the budget.
package reporting

import (
	"context"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/Cascadia376/cascadia-data-pipeline/infrastructure/repository"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
)

const DefaultSummaryLimit = 5

type Service struct {
	budgetViewRepo repository.BudgetViewRepository
}

func NewService(budgetViewRepo repository.BudgetViewRepository) *Service {
	return &Service{budgetViewRepo: budgetViewRepo}
}

// BudgetSummary returns one entry per store ordered by total sales, largest
// first. A limit of zero or less returns every store.
func (s *Service) BudgetSummary(ctx context.Context, limit int) ([]domain.StoreBudgetSummary, error) {
	rows, err := s.budgetViewRepo.ListBudgetView(ctx)
	if err != nil {
		return nil, err
	}

	summaries := Summarize(rows)
	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

// Summarize groups view rows by store.
func Summarize(rows []domain.BudgetViewRow) []domain.StoreBudgetSummary {
	byStore := make(map[string][]domain.BudgetViewRow)
	order := make([]string, 0)
	for _, row := range rows {
		if _, seen := byStore[row.StoreName]; !seen {
			order = append(order, row.StoreName)
		}
		byStore[row.StoreName] = append(byStore[row.StoreName], row)
	}

	summaries := make([]domain.StoreBudgetSummary, 0, len(order))
	for _, store := range order {
		summaries = append(summaries, summarizeStore(store, byStore[store]))
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalSales > summaries[j].TotalSales
	})

	return summaries
}

func summarizeStore(store string, rows []domain.BudgetViewRow) domain.StoreBudgetSummary {
	summary := domain.StoreBudgetSummary{
		StoreName:    store,
		Records:      len(rows),
		EarliestDate: rows[0].SaleDate,
		LatestDate:   rows[0].SaleDate,
	}

	sales := make(stats.Float64Data, 0, len(rows))
	for _, row := range rows {
		if row.SaleDate.Before(summary.EarliestDate) {
			summary.EarliestDate = row.SaleDate
		}
		if row.SaleDate.After(summary.LatestDate) {
			summary.LatestDate = row.SaleDate
		}
		summary.TotalBudget += row.BudgetForecast
		sales = append(sales, row.ActualSales)
	}

	// stats only errors on empty input, which cannot happen here.
	total, _ := sales.Sum()
	mean, _ := sales.Mean()
	median, _ := sales.Median()
	stddev, _ := sales.StandardDeviation()

	summary.TotalSales = round2(total)
	summary.TotalBudget = round2(summary.TotalBudget)
	summary.MeanDailySales = round2(mean)
	summary.MedianDailySales = round2(median)
	summary.StdDevDailySales = round2(stddev)

	if summary.TotalBudget > 0 {
		summary.BudgetAttainment = round2(total / summary.TotalBudget * 100)
	}

	return summary
}

func round2(v float64) float64 {
	r, err := stats.Round(v, 2)
	if err != nil {
		return v
	}
	return r
}
