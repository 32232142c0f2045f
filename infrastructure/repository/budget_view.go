package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Cascadia376/cascadia-data-pipeline/infrastructure/database/postgres"
	"github.com/Cascadia376/cascadia-data-pipeline/infrastructure/database/schema"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
)

//go:generate mockgen -source=budget_view.go -destination=mocks/mock_budget_view.go -package=mocks

type BudgetViewRepository interface {
	ListBudgetView(ctx context.Context) ([]domain.BudgetViewRow, error)
}

type budgetViewRepository struct {
	conn postgres.Queryer
}

func NewBudgetViewRepository(conn postgres.Queryer) BudgetViewRepository {
	return &budgetViewRepository{
		conn: conn,
	}
}

func (r *budgetViewRepository) ListBudgetView(ctx context.Context) ([]domain.BudgetViewRow, error) {
	query, args, err := squirrel.
		Select("store_name", "sale_date", "actual_sales", "budget_forecast").
		From(schema.BudgetView).
		OrderBy("store_name", "sale_date").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build budget view query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query budget view: %w", err)
	}
	defer rows.Close()

	out := make([]domain.BudgetViewRow, 0)
	for rows.Next() {
		var row domain.BudgetViewRow
		if err := rows.Scan(&row.StoreName, &row.SaleDate, &row.ActualSales, &row.BudgetForecast); err != nil {
			return nil, fmt.Errorf("scan budget view row: %w", err)
		}
		out = append(out, row)
	}

	return out, rows.Err()
}
