package repository

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
)

func TestHistoricalSalesCall(t *testing.T) {
	query, args, err := historicalSalesCall(domain.HistoricalRecord{
		StoreName:   "Colwood",
		SaleDate:    time.Date(2024, 7, 7, 0, 0, 0, 0, time.UTC),
		DayOfWeek:   "Sunday",
		DayNumber:   1,
		FiscalYear:  2025,
		SalesAmount: 1000,
		DataType:    domain.RecordKindActual,
	})
	require.NoError(t, err)

	assert.Equal(t, "SELECT import_daily_sales_data($1, $2, $3, $4, $5, $6, $7)", query)
	assert.Equal(t, []interface{}{"Colwood", "2024-07-07", "Sunday", 1, 2025, 1000.0, "actual"}, args)
}

func TestBudgetForecastCall(t *testing.T) {
	query, args, err := budgetForecastCall(domain.ForecastRecord{
		StoreName:          "Colwood",
		ForecastDate:       time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC),
		DayOfWeek:          "Sunday",
		DayNumber:          1,
		FiscalYear:         2026,
		ForecastAmount:     1100,
		VarianceAdjustment: 5.0,
		ForecastType:       domain.ForecastGranularityDaily,
	})
	require.NoError(t, err)

	assert.Equal(t, "SELECT import_budget_forecast_data($1, $2, $3, $4, $5, $6, $7, $8)", query)
	assert.Equal(t, []interface{}{"Colwood", "2025-07-06", "Sunday", 1, 2026, 1100.0, 5.0, "daily"}, args)
}

func TestRecordValidation(t *testing.T) {
	validate := validator.New()

	valid := domain.HistoricalRecord{
		StoreName:   "Quadra",
		SaleDate:    time.Date(2024, 7, 7, 0, 0, 0, 0, time.UTC),
		DayOfWeek:   "Sunday",
		DayNumber:   1,
		FiscalYear:  2025,
		SalesAmount: 0.01,
		DataType:    domain.RecordKindActual,
	}
	assert.NoError(t, validate.Struct(valid))

	zeroAmount := valid
	zeroAmount.SalesAmount = 0
	assert.Error(t, validate.Struct(zeroAmount))

	noDate := valid
	noDate.SaleDate = time.Time{}
	assert.Error(t, validate.Struct(noDate))

	wrongType := domain.ForecastRecord{
		StoreName:      "Quadra",
		ForecastDate:   time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC),
		DayOfWeek:      "Sunday",
		FiscalYear:     2026,
		ForecastAmount: 10,
		ForecastType:   "weekly",
	}
	assert.Error(t, validate.Struct(wrongType))
}

func TestMapStoreQuery(t *testing.T) {
	query, args, err := mapStoreQuery("Colwood", "Cascadia Hatley Park")
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE store_name_mapping SET store_id = (SELECT store_id FROM store WHERE name = $1), updated_at = NOW() WHERE excel_store_name = $2 RETURNING store_id",
		query)
	assert.Equal(t, []interface{}{"Cascadia Hatley Park", "Colwood"}, args)
}

func TestCountQuery(t *testing.T) {
	tests := []struct {
		counter string
		want    string
	}{
		{counter: CountHistorical, want: "SELECT COUNT(*) FROM historical_daily_sales"},
		{counter: CountForecast, want: "SELECT COUNT(*) FROM budget_forecasts"},
		{counter: CountMappedStores, want: "SELECT COUNT(*) FROM store_name_mapping WHERE store_id IS NOT NULL"},
		{counter: CountViewRows, want: "SELECT COUNT(*) FROM daily_sales_budget_view"},
	}

	for _, tt := range tests {
		t.Run(tt.counter, func(t *testing.T) {
			query, _, err := countQuery(tt.counter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
		})
	}

	_, _, err := countQuery("users")
	assert.Error(t, err)
}
