// Package budgetsheet turns the daily sales & budget worksheet into historical
// and forecast records. The sheet has no explicit schema: store columns are
// found by header text, everything else sits at fixed positions.
package budgetsheet

import (
	"time"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
)

const (
	DefaultSheetName            = "FCST FY26"
	DefaultHistoricalFiscalYear = 2025
	DefaultForecastFiscalYear   = 2026
)

// Layout holds the positional contract of the workbook.
type Layout struct {
	HeaderRow            int
	AdjustmentRow        int
	DataStartRow         int
	DateColumns          domain.DateColumns
	HistoricalFiscalYear int
	ForecastFiscalYear   int
	DateFormat           string
}

// DefaultLayout is a three-row header block (stores, adjustments, blank) with
// the day and date columns in A..F.
func DefaultLayout() Layout {
	return Layout{
		HeaderRow:     0,
		AdjustmentRow: 1,
		DataStartRow:  3,
		DateColumns: domain.DateColumns{
			DayNumber:        0,
			DayName:          1,
			PriorYearDate:    2,
			CurrentYearDate:  3,
			CurrentDayNumber: 4,
			CurrentDayName:   5,
		},
		HistoricalFiscalYear: DefaultHistoricalFiscalYear,
		ForecastFiscalYear:   DefaultForecastFiscalYear,
		DateFormat:           time.DateOnly,
	}
}

// WithFiscalYears overrides the fiscal year labels. Zero keeps the current value.
func (l Layout) WithFiscalYears(historical, forecast int) Layout {
	if historical > 0 {
		l.HistoricalFiscalYear = historical
	}
	if forecast > 0 {
		l.ForecastFiscalYear = forecast
	}
	return l
}
