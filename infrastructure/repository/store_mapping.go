package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Cascadia376/cascadia-data-pipeline/infrastructure/database/postgres"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
)

const (
	storeTable        = "store"
	storeMappingTable = "store_name_mapping"
)

//go:generate mockgen -source=store_mapping.go -destination=mocks/mock_store_mapping.go -package=mocks

type StoreMappingRepository interface {
	ListStores(ctx context.Context) ([]domain.Store, error)
	// MapStore points excelName at the store called dbName. The returned bool is
	// false when no such store exists.
	MapStore(ctx context.Context, excelName, dbName string) (int64, bool, error)
}

type storeMappingRepository struct {
	conn postgres.Queryer
}

func NewStoreMappingRepository(conn postgres.Queryer) StoreMappingRepository {
	return &storeMappingRepository{
		conn: conn,
	}
}

func (r *storeMappingRepository) ListStores(ctx context.Context) ([]domain.Store, error) {
	query, args, err := squirrel.
		Select("store_id", "name").
		From(storeTable).
		OrderBy("store_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list stores query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	stores := make([]domain.Store, 0)
	for rows.Next() {
		var s domain.Store
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, s)
	}

	return stores, rows.Err()
}

func (r *storeMappingRepository) MapStore(ctx context.Context, excelName, dbName string) (int64, bool, error) {
	query, args, err := mapStoreQuery(excelName, dbName)
	if err != nil {
		return 0, false, fmt.Errorf("build map store query: %w", err)
	}

	var storeID sql.NullInt64
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&storeID)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("map store %q: %w", excelName, err)
	}

	return storeID.Int64, storeID.Valid, nil
}

func mapStoreQuery(excelName, dbName string) (string, []interface{}, error) {
	return squirrel.
		Update(storeMappingTable).
		Set("store_id", squirrel.Expr("(SELECT store_id FROM store WHERE name = ?)", dbName)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"excel_store_name": excelName}).
		Suffix("RETURNING store_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
