package budgetsheet

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
)

type rowDates struct {
	dayNumber   int
	dayName     string
	priorDate   time.Time
	currentDate time.Time
}

// ProcessRows walks every row from the data start row to the end of the table.
// A row that cannot be read is recorded as skipped and processing continues.
// The function keeps no state between calls.
func ProcessRows(
	table *domain.RawTable,
	structure domain.StructureMap,
	adjustments domain.AdjustmentMap,
	layout Layout,
) domain.Extraction {
	storeColumns := structure.StoreColumns()

	capacity := table.RowCount() - structure.DataStartRow
	if capacity < 0 {
		capacity = 0
	}
	outcomes := make([]domain.RowOutcome, 0, capacity)

	for row := structure.DataStartRow; row < table.RowCount(); row++ {
		outcome := processRow(table, structure, storeColumns, adjustments, layout, row)
		if outcome.Skipped() {
			logrus.WithFields(logrus.Fields{
				"row":    row,
				"reason": outcome.SkipReason,
				"detail": outcome.Detail,
			}).Debug("Row skipped")
		}
		outcomes = append(outcomes, outcome)
	}

	extraction := domain.Extraction{Outcomes: outcomes}

	logrus.WithFields(logrus.Fields{
		"rows":       len(outcomes),
		"skipped":    extraction.SkippedRows(),
		"historical": len(extraction.HistoricalRecords()),
		"forecast":   len(extraction.ForecastRecords()),
	}).Info("Data rows processed")

	return extraction
}

func processRow(
	table *domain.RawTable,
	structure domain.StructureMap,
	storeColumns []domain.StoreColumn,
	adjustments domain.AdjustmentMap,
	layout Layout,
	row int,
) (outcome domain.RowOutcome) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"row":   row,
				"panic": r,
			}).Warn("Error processing row")
			outcome = domain.RowOutcome{
				Row:        row,
				SkipReason: domain.SkipRowPanic,
				Detail:     fmt.Sprint(r),
			}
		}
	}()

	dates, reason, detail := readRowDates(table, structure.DateColumns, layout, row)
	if reason != "" {
		return domain.RowOutcome{Row: row, SkipReason: reason, Detail: detail}
	}

	outcome = domain.RowOutcome{Row: row}

	for _, sc := range storeColumns {
		if !table.HasColumn(sc.Column) {
			continue
		}

		if amount, ok := PositiveAmount(table.Cell(row, sc.Column)); ok {
			outcome.Historical = append(outcome.Historical, domain.HistoricalRecord{
				StoreName:   sc.Store,
				SaleDate:    dates.priorDate,
				DayOfWeek:   dates.dayName,
				DayNumber:   dates.dayNumber,
				FiscalYear:  layout.HistoricalFiscalYear,
				SalesAmount: amount,
				DataType:    domain.RecordKindActual,
			})
		}

		// The forecast sits in the column right after the store's actuals.
		forecastCol := sc.Column + 1
		if !table.HasColumn(forecastCol) {
			continue
		}

		if amount, ok := PositiveAmount(table.Cell(row, forecastCol)); ok {
			outcome.Forecast = append(outcome.Forecast, domain.ForecastRecord{
				StoreName:          sc.Store,
				ForecastDate:       dates.currentDate,
				DayOfWeek:          dates.dayName,
				DayNumber:          dates.dayNumber,
				FiscalYear:         layout.ForecastFiscalYear,
				ForecastAmount:     amount,
				VarianceAdjustment: adjustments.For(sc.Store),
				ForecastType:       domain.ForecastGranularityDaily,
			})
		}
	}

	return outcome
}

// readRowDates checks presence of all four day/date cells before coercing any.
// checkWeekday reports rows whose day number disagrees with the Sunday=1
// ordinal of their day name. The row is kept either way.
func checkWeekday(row int, dates rowDates) {
	logger := logrus.WithFields(logrus.Fields{"row": row, "day_name": dates.dayName, "day_number": dates.dayNumber})

	ordinal, known := domain.WeekdayOrdinal(dates.dayName)
	switch {
	case !known:
		logger.Debug("unrecognised day name kept as is")
	case ordinal != dates.dayNumber:
		logger.WithField("expected_day_number", ordinal).Warn("day number does not match day name")
	}
}

func readRowDates(table *domain.RawTable, cols domain.DateColumns, layout Layout, row int) (rowDates, domain.SkipReason, string) {
	dayNumberCell := table.Cell(row, cols.DayNumber)
	dayNameCell := table.Cell(row, cols.DayName)
	priorCell := table.Cell(row, cols.PriorYearDate)
	currentCell := table.Cell(row, cols.CurrentYearDate)

	switch {
	case IsAbsent(dayNumberCell):
		return rowDates{}, domain.SkipMissingDayNumber, ""
	case IsAbsent(dayNameCell):
		return rowDates{}, domain.SkipMissingDayName, ""
	case IsAbsent(priorCell):
		return rowDates{}, domain.SkipMissingPriorYearDate, ""
	case IsAbsent(currentCell):
		return rowDates{}, domain.SkipMissingCurrentYearDate, ""
	}

	var dates rowDates
	var ok bool

	if dates.dayNumber, ok = IntegerValue(dayNumberCell); !ok {
		return rowDates{}, domain.SkipInvalidDayNumber, dayNumberCell.String()
	}
	if dates.dayName, ok = TextValue(dayNameCell); !ok {
		return rowDates{}, domain.SkipInvalidDayName, dayNameCell.String()
	}
	checkWeekday(row, dates)
	if dates.priorDate, ok = DateValue(priorCell, layout.DateFormat); !ok {
		return rowDates{}, domain.SkipInvalidPriorYearDate, priorCell.String()
	}
	if dates.currentDate, ok = DateValue(currentCell, layout.DateFormat); !ok {
		return rowDates{}, domain.SkipInvalidCurrentYearDate, currentCell.String()
	}

	return dates, "", ""
}
