// Package excel loads a worksheet into a domain.RawTable with typed cells.
package excel

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
)

// Built-in number formats that render a date.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true,
	34: true, 35: true, 36: true,
	50: true, 51: true, 52: true, 53: true, 54: true,
	57: true, 58: true,
}

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// Load opens the workbook at path and reads one sheet.
func (l *Loader) Load(ctx context.Context, path string, sheet string) (*domain.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrTableLoad, "open %s: %v", path, err)
	}
	defer f.Close()

	return readSheet(ctx, f, sheet)
}

func readSheet(ctx context.Context, f *excelize.File, sheet string) (*domain.RawTable, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, errors.Wrapf(domain.ErrTableLoad, "sheet %q not found (available: %s)", sheet, strings.Join(f.GetSheetList(), ", "))
	}

	rawRows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(domain.ErrTableLoad, "read sheet %q: %v", sheet, err)
	}

	r := &sheetReader{
		file:       f,
		sheet:      sheet,
		dateStyles: make(map[int]bool),
		date1904:   uses1904(f),
	}

	rows := make([][]domain.Cell, len(rawRows))
	for rowIdx, rawRow := range rawRows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cells := make([]domain.Cell, len(rawRow))
		for colIdx, raw := range rawRow {
			cells[colIdx] = r.cell(rowIdx, colIdx, raw)
		}
		rows[rowIdx] = cells
	}

	table := domain.NewRawTable(sheet, rows)

	logrus.WithFields(logrus.Fields{
		"sheet":   sheet,
		"rows":    table.RowCount(),
		"columns": table.Width(),
	}).Info("Spreadsheet loaded")

	return table, nil
}

type sheetReader struct {
	file       *excelize.File
	sheet      string
	dateStyles map[int]bool
	date1904   bool
}

func (r *sheetReader) cell(rowIdx, colIdx int, raw string) domain.Cell {
	if raw == "" {
		return domain.EmptyCell()
	}

	name, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
	if err != nil {
		return domain.TextCell(raw)
	}

	cellType, err := r.file.GetCellType(r.sheet, name)
	if err != nil {
		return domain.TextCell(raw)
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeBool, excelize.CellTypeError:
		return domain.TextCell(raw)
	case excelize.CellTypeDate:
		return parseISODate(raw)
	}

	number, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return domain.TextCell(raw)
	}

	if r.isDateStyled(name) {
		t, err := excelize.ExcelDateToTime(number, r.date1904)
		if err == nil {
			return domain.DateCell(t)
		}
	}

	return domain.NumberCell(number)
}

func (r *sheetReader) isDateStyled(cellName string) bool {
	styleID, err := r.file.GetCellStyle(r.sheet, cellName)
	if err != nil || styleID == 0 {
		return false
	}

	if isDate, ok := r.dateStyles[styleID]; ok {
		return isDate
	}

	isDate := false
	style, err := r.file.GetStyle(styleID)
	if err == nil && style != nil {
		if style.CustomNumFmt != nil {
			isDate = isDateFormat(*style.CustomNumFmt)
		} else {
			isDate = builtinDateFormats[style.NumFmt]
		}
	}

	r.dateStyles[styleID] = isDate
	return isDate
}

// isDateFormat reports whether a custom number format renders a calendar date.
// Quoted literals and bracketed sections ([Red], [$-409]) are ignored.
func isDateFormat(format string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false

	for _, ch := range strings.ToLower(format) {
		switch {
		case ch == '"':
			inQuote = !inQuote
		case inQuote:
		case ch == '[':
			inBracket = true
		case ch == ']':
			inBracket = false
		case inBracket:
		default:
			b.WriteRune(ch)
		}
	}

	stripped := b.String()
	return strings.ContainsAny(stripped, "yd")
}

func parseISODate(raw string) domain.Cell {
	for _, layout := range []string{"2006-01-02T15:04:05Z07:00", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return domain.DateCell(t)
		}
	}
	return domain.TextCell(raw)
}

func uses1904(f *excelize.File) bool {
	props, err := f.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}
