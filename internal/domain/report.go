package domain

import "time"

// SkipReason explains why a data row produced no records.
type SkipReason string

const (
	SkipMissingDayNumber       SkipReason = "missing_day_number"
	SkipMissingDayName         SkipReason = "missing_day_name"
	SkipMissingPriorYearDate   SkipReason = "missing_prior_year_date"
	SkipMissingCurrentYearDate SkipReason = "missing_current_year_date"
	SkipInvalidDayNumber       SkipReason = "invalid_day_number"
	SkipInvalidDayName         SkipReason = "invalid_day_name"
	SkipInvalidPriorYearDate   SkipReason = "invalid_prior_year_date"
	SkipInvalidCurrentYearDate SkipReason = "invalid_current_year_date"
	SkipRowPanic               SkipReason = "row_error"
)

// RowOutcome is the result of processing one data row: either the records it
// produced or the reason it was skipped.
type RowOutcome struct {
	Row        int                `json:"row"`
	Historical []HistoricalRecord `json:"historical,omitempty"`
	Forecast   []ForecastRecord   `json:"forecast,omitempty"`
	SkipReason SkipReason         `json:"skip_reason,omitempty"`
	Detail     string             `json:"detail,omitempty"`
}

func (o RowOutcome) Skipped() bool {
	return o.SkipReason != ""
}

func (o RowOutcome) RecordCount() int {
	return len(o.Historical) + len(o.Forecast)
}

// Extraction collects the outcomes of every candidate data row, in row order.
type Extraction struct {
	Outcomes []RowOutcome
}

// HistoricalRecords flattens the historical stream in row-then-column order.
func (e Extraction) HistoricalRecords() []HistoricalRecord {
	records := make([]HistoricalRecord, 0)
	for _, outcome := range e.Outcomes {
		records = append(records, outcome.Historical...)
	}
	return records
}

// ForecastRecords flattens the forecast stream in row-then-column order.
func (e Extraction) ForecastRecords() []ForecastRecord {
	records := make([]ForecastRecord, 0)
	for _, outcome := range e.Outcomes {
		records = append(records, outcome.Forecast...)
	}
	return records
}

func (e Extraction) SkippedRows() int {
	skipped := 0
	for _, outcome := range e.Outcomes {
		if outcome.Skipped() {
			skipped++
		}
	}
	return skipped
}

// ImportReport aggregates one import run. Counts are derived from the
// extraction outcomes and the sink results.
type ImportReport struct {
	RunID       string    `json:"run_id"`
	SourceFile  string    `json:"source_file"`
	SheetName   string    `json:"sheet_name"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`

	StoresDiscovered int `json:"stores_discovered"`

	RowsScanned     int                `json:"rows_scanned"`
	RowsAccepted    int                `json:"rows_accepted"`
	RowsSkipped     int                `json:"rows_skipped"`
	SkippedByReason map[SkipReason]int `json:"skipped_by_reason,omitempty"`

	HistoricalExtracted int         `json:"historical_extracted"`
	ForecastExtracted   int         `json:"forecast_extracted"`
	Historical          BatchResult `json:"historical"`
	Forecast            BatchResult `json:"forecast"`

	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ApplyExtraction fills the row and extraction counts.
func (r *ImportReport) ApplyExtraction(e Extraction) {
	r.RowsScanned = len(e.Outcomes)
	r.RowsSkipped = 0
	r.RowsAccepted = 0
	r.HistoricalExtracted = 0
	r.ForecastExtracted = 0
	r.SkippedByReason = make(map[SkipReason]int)

	for _, outcome := range e.Outcomes {
		if outcome.Skipped() {
			r.RowsSkipped++
			r.SkippedByReason[outcome.SkipReason]++
			continue
		}
		r.RowsAccepted++
		r.HistoricalExtracted += len(outcome.Historical)
		r.ForecastExtracted += len(outcome.Forecast)
	}
}

func (r *ImportReport) RecordsExtracted() int {
	return r.HistoricalExtracted + r.ForecastExtracted
}

func (r *ImportReport) RecordsAccepted() int {
	return r.Historical.Accepted + r.Forecast.Accepted
}
