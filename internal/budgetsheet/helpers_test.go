package budgetsheet

import (
	"time"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
)

var (
	e = domain.EmptyCell()
	n = domain.NumberCell
	s = domain.TextCell
)

func d(year int, month time.Month, day int) domain.Cell {
	return domain.DateCell(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// budgetTable builds a workbook shaped like the production sheet: day/date
// columns A..F, then Colwood (G, H) and Quadra (I, J).
func budgetTable(dataRows ...[]domain.Cell) *domain.RawTable {
	rows := [][]domain.Cell{
		{s("Day"), s("Day Name"), s("FY25"), s("FY26"), e, e, s("Colwood"), e, s("Quadra"), e},
		{e, e, e, e, e, e, n(5.0), e, n(-2.5), e},
		{s("#"), s("Day"), s("Date"), s("Date"), e, e, s("Actual"), s("Budget"), s("Actual"), s("Budget")},
	}
	rows = append(rows, dataRows...)
	return domain.NewRawTable(DefaultSheetName, rows)
}

func dataRow(dayNumber, dayName, prior, current domain.Cell, stores ...domain.Cell) []domain.Cell {
	row := []domain.Cell{dayNumber, dayName, prior, current, e, e}
	return append(row, stores...)
}
