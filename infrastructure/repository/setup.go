package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Cascadia376/cascadia-data-pipeline/infrastructure/database/postgres"
	"github.com/Cascadia376/cascadia-data-pipeline/infrastructure/database/schema"
)

// Counters checked when verifying a deployed database.
const (
	CountHistorical   = "historical"
	CountForecast     = "forecast"
	CountMappedStores = "mapped_stores"
	CountViewRows     = "view_rows"
)

//go:generate mockgen -source=setup.go -destination=mocks/mock_setup.go -package=mocks

type SetupRepository interface {
	ServerVersion(ctx context.Context) (string, error)
	ExistingTables(ctx context.Context, tables []string) ([]string, error)
	Count(ctx context.Context, counter string) (int64, error)
	DeploySchema(ctx context.Context) error
}

type setupRepository struct {
	conn postgres.Queryer
}

func NewSetupRepository(conn postgres.Queryer) SetupRepository {
	return &setupRepository{
		conn: conn,
	}
}

func (r *setupRepository) DeploySchema(ctx context.Context) error {
	return schema.Deploy(ctx, r.conn)
}

func (r *setupRepository) ServerVersion(ctx context.Context) (string, error) {
	var version string
	if err := r.conn.QueryRowContext(ctx, "SELECT version()").Scan(&version); err != nil {
		return "", fmt.Errorf("query server version: %w", err)
	}
	return version, nil
}

func (r *setupRepository) ExistingTables(ctx context.Context, tables []string) ([]string, error) {
	query, args, err := squirrel.
		Select("table_name").
		From("information_schema.tables").
		Where(squirrel.Eq{"table_schema": "public", "table_name": tables}).
		OrderBy("table_name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build table lookup query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("lookup tables: %w", err)
	}
	defer rows.Close()

	found := make([]string, 0, len(tables))
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		found = append(found, name)
	}

	return found, rows.Err()
}

func (r *setupRepository) Count(ctx context.Context, counter string) (int64, error) {
	query, args, err := countQuery(counter)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", counter, err)
	}
	return n, nil
}

func countQuery(counter string) (string, []interface{}, error) {
	builder := squirrel.Select("COUNT(*)").PlaceholderFormat(squirrel.Dollar)

	switch counter {
	case CountHistorical:
		builder = builder.From("historical_daily_sales")
	case CountForecast:
		builder = builder.From("budget_forecasts")
	case CountMappedStores:
		builder = builder.From(storeMappingTable).Where(squirrel.NotEq{"store_id": nil})
	case CountViewRows:
		builder = builder.From(schema.BudgetView)
	default:
		return "", nil, fmt.Errorf("unknown counter %q", counter)
	}

	return builder.ToSql()
}
