package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupStore(t *testing.T) {
	name, ok := LookupStore("Eagle Creek")
	assert.True(t, ok)
	assert.Equal(t, "Eagle Creek", name)

	for _, header := range []string{"colwood", " Colwood", "Total", ""} {
		_, ok := LookupStore(header)
		assert.False(t, ok, header)
	}
	assert.Len(t, CanonicalStores, 13)
}

func TestWeekdayOrdinal(t *testing.T) {
	ordinal, ok := WeekdayOrdinal("Sunday")
	assert.True(t, ok)
	assert.Equal(t, 1, ordinal)

	ordinal, ok = WeekdayOrdinal("Saturday")
	assert.True(t, ok)
	assert.Equal(t, 7, ordinal)

	_, ok = WeekdayOrdinal("Sun")
	assert.False(t, ok)
}

func TestImportReport_ApplyExtraction(t *testing.T) {
	e := Extraction{Outcomes: []RowOutcome{
		{Row: 3, Historical: []HistoricalRecord{{StoreName: "Colwood"}}, Forecast: []ForecastRecord{{StoreName: "Colwood"}}},
		{Row: 4, SkipReason: SkipMissingDayName},
		{Row: 5, SkipReason: SkipMissingDayName},
		{Row: 6, Forecast: []ForecastRecord{{StoreName: "Quadra"}}},
	}}

	var report ImportReport
	report.ApplyExtraction(e)
	report.Historical = BatchResult{Accepted: 1}
	report.Forecast = BatchResult{Accepted: 1, Rejected: 1}

	assert.Equal(t, 4, report.RowsScanned)
	assert.Equal(t, 2, report.RowsAccepted)
	assert.Equal(t, 2, report.RowsSkipped)
	assert.Equal(t, map[SkipReason]int{SkipMissingDayName: 2}, report.SkippedByReason)
	assert.Equal(t, 3, report.RecordsExtracted())
	assert.Equal(t, 2, report.RecordsAccepted())
	assert.Equal(t, 2, e.SkippedRows())
	assert.Len(t, e.ForecastRecords(), 2)
}
