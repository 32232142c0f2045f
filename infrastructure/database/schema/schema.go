// Package schema holds the DDL for the sales and budget tables.
package schema

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/Cascadia376/cascadia-data-pipeline/infrastructure/database/postgres"
)

//go:embed sales_budget_schema.sql
var salesBudgetSchema string

// Tables created by the schema.
var Tables = []string{
	"store",
	"store_name_mapping",
	"historical_daily_sales",
	"budget_forecasts",
}

const BudgetView = "daily_sales_budget_view"

func SQL() string {
	return salesBudgetSchema
}

// Deploy applies the schema in a single statement batch.
func Deploy(ctx context.Context, q postgres.Queryer) error {
	if _, err := q.ExecContext(ctx, salesBudgetSchema); err != nil {
		return fmt.Errorf("deploy sales budget schema: %w", err)
	}
	return nil
}
