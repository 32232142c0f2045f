// Package repository contains the PostgreSQL implementations of the data access layer.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Cascadia376/cascadia-data-pipeline/infrastructure/database/postgres"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
)

const recordSavepoint = "import_record"

// callBuilder renders the SQL function call that persists one record.
type callBuilder[T any] func(record T) (string, []interface{}, error)

// importBatch persists records in a single transaction. Every record runs under
// its own savepoint so a rejected record leaves its siblings intact. Only
// connectivity failures abort the batch, reported as domain.ErrSinkUnavailable.
func importBatch[T any](
	ctx context.Context,
	conn postgres.Conn,
	validate *validator.Validate,
	stream string,
	records []T,
	build callBuilder[T],
) (domain.BatchResult, error) {
	var result domain.BatchResult
	if len(records) == 0 {
		return result, nil
	}

	logger := logrus.WithField("stream", stream)

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, record := range records {
			accepted, err := importRecord(ctx, tx, validate, record, build)
			if err != nil {
				return err
			}
			if accepted {
				result.Accepted++
				continue
			}
			result.Rejected++
			logger.WithField("record", i).Debug("record rejected")
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrSinkUnavailable) {
			return domain.BatchResult{}, err
		}
		// Begin or commit failed: nothing from this batch is durable.
		return domain.BatchResult{}, fmt.Errorf("%w: %s batch: %v", domain.ErrSinkUnavailable, stream, err)
	}

	logger.WithFields(logrus.Fields{
		"accepted": result.Accepted,
		"rejected": result.Rejected,
	}).Info("batch persisted")

	return result, nil
}

func importRecord[T any](
	ctx context.Context,
	tx *sql.Tx,
	validate *validator.Validate,
	record T,
	build callBuilder[T],
) (bool, error) {
	if err := validate.Struct(record); err != nil {
		logrus.WithError(err).Debug("record failed validation")
		return false, nil
	}

	query, args, err := build(record)
	if err != nil {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, "SAVEPOINT "+recordSavepoint); err != nil {
		return false, unavailable(err)
	}

	var ok bool
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&ok); err != nil {
		if postgres.IsConnectivityError(err) {
			return false, unavailable(err)
		}
		logrus.WithError(err).Debug("record refused by database")
		if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+recordSavepoint); rbErr != nil {
			return false, unavailable(rbErr)
		}
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT "+recordSavepoint); err != nil {
		return false, unavailable(err)
	}

	return ok, nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrSinkUnavailable, err)
}
