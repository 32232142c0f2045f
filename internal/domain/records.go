package domain

import "time"

const (
	RecordKindActual         = "actual"
	ForecastGranularityDaily = "daily"
)

// HistoricalRecord is one day of actual sales for one store.
type HistoricalRecord struct {
	StoreName   string    `json:"store_name" validate:"required"`
	SaleDate    time.Time `json:"sale_date" validate:"required"`
	DayOfWeek   string    `json:"day_of_week" validate:"required"`
	DayNumber   int       `json:"day_number"`
	FiscalYear  int       `json:"fiscal_year" validate:"gt=0"`
	SalesAmount float64   `json:"sales_amount" validate:"gt=0"`
	DataType    string    `json:"data_type" validate:"oneof=actual"`
}

// ForecastRecord is one day of budgeted sales for one store.
type ForecastRecord struct {
	StoreName          string    `json:"store_name" validate:"required"`
	ForecastDate       time.Time `json:"forecast_date" validate:"required"`
	DayOfWeek          string    `json:"day_of_week" validate:"required"`
	DayNumber          int       `json:"day_number"`
	FiscalYear         int       `json:"fiscal_year" validate:"gt=0"`
	ForecastAmount     float64   `json:"forecast_amount" validate:"gt=0"`
	VarianceAdjustment float64   `json:"variance_adjustment"`
	ForecastType       string    `json:"forecast_type" validate:"oneof=daily"`
}

// BatchResult is what a persistence sink reports for one stream.
type BatchResult struct {
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}
