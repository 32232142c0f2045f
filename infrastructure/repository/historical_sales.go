package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/go-playground/validator/v10"

	"github.com/Cascadia376/cascadia-data-pipeline/infrastructure/database/postgres"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
)

//go:generate mockgen -source=historical_sales.go -destination=mocks/mock_historical_sales.go -package=mocks

type HistoricalSalesRepository interface {
	ImportHistorical(ctx context.Context, records []domain.HistoricalRecord) (domain.BatchResult, error)
}

type historicalSalesRepository struct {
	conn     postgres.Conn
	validate *validator.Validate
}

func NewHistoricalSalesRepository(conn postgres.Conn) HistoricalSalesRepository {
	return &historicalSalesRepository{
		conn:     conn,
		validate: validator.New(),
	}
}

func (r *historicalSalesRepository) ImportHistorical(
	ctx context.Context,
	records []domain.HistoricalRecord,
) (domain.BatchResult, error) {
	return importBatch(ctx, r.conn, r.validate, "historical", records, historicalSalesCall)
}

func historicalSalesCall(record domain.HistoricalRecord) (string, []interface{}, error) {
	return squirrel.
		Select().
		Column(squirrel.Expr(
			"import_daily_sales_data(?, ?, ?, ?, ?, ?, ?)",
			record.StoreName,
			record.SaleDate.Format(time.DateOnly),
			record.DayOfWeek,
			record.DayNumber,
			record.FiscalYear,
			record.SalesAmount,
			record.DataType,
		)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
