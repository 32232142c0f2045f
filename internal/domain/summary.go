package domain

import "time"

// BudgetViewRow is one day of daily_sales_budget_view for a store.
type BudgetViewRow struct {
	StoreName      string
	SaleDate       time.Time
	ActualSales    float64
	BudgetForecast float64
}

// StoreBudgetSummary compares actual sales and budget for one store.
type StoreBudgetSummary struct {
	StoreName        string    `json:"store_name"`
	Records          int       `json:"records"`
	EarliestDate     time.Time `json:"earliest_date"`
	LatestDate       time.Time `json:"latest_date"`
	TotalSales       float64   `json:"total_sales"`
	TotalBudget      float64   `json:"total_budget"`
	MeanDailySales   float64   `json:"mean_daily_sales"`
	MedianDailySales float64   `json:"median_daily_sales"`
	StdDevDailySales float64   `json:"stddev_daily_sales"`
	BudgetAttainment float64   `json:"budget_attainment"`
}

// SetupVerification is the outcome of checking a deployed database.
type SetupVerification struct {
	Tables          []string `json:"tables"`
	HistoricalCount int64    `json:"historical_count"`
	ForecastCount   int64    `json:"forecast_count"`
	MappedStores    int64    `json:"mapped_stores"`
	ViewRows        int64    `json:"view_rows"`
}

// Healthy reports whether every stage of the setup left data behind.
func (v SetupVerification) Healthy() bool {
	return v.HistoricalCount > 0 && v.ForecastCount > 0 && v.MappedStores > 0
}
