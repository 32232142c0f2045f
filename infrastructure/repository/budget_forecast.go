package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/go-playground/validator/v10"

	"github.com/Cascadia376/cascadia-data-pipeline/infrastructure/database/postgres"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
)

//go:generate mockgen -source=budget_forecast.go -destination=mocks/mock_budget_forecast.go -package=mocks

type BudgetForecastRepository interface {
	ImportForecast(ctx context.Context, records []domain.ForecastRecord) (domain.BatchResult, error)
}

type budgetForecastRepository struct {
	conn     postgres.Conn
	validate *validator.Validate
}

func NewBudgetForecastRepository(conn postgres.Conn) BudgetForecastRepository {
	return &budgetForecastRepository{
		conn:     conn,
		validate: validator.New(),
	}
}

func (r *budgetForecastRepository) ImportForecast(
	ctx context.Context,
	records []domain.ForecastRecord,
) (domain.BatchResult, error) {
	return importBatch(ctx, r.conn, r.validate, "forecast", records, budgetForecastCall)
}

func budgetForecastCall(record domain.ForecastRecord) (string, []interface{}, error) {
	return squirrel.
		Select().
		Column(squirrel.Expr(
			"import_budget_forecast_data(?, ?, ?, ?, ?, ?, ?, ?)",
			record.StoreName,
			record.ForecastDate.Format(time.DateOnly),
			record.DayOfWeek,
			record.DayNumber,
			record.FiscalYear,
			record.ForecastAmount,
			record.VarianceAdjustment,
			record.ForecastType,
		)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
