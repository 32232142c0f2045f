package domain

// RawTable is the in-memory grid loaded from one worksheet. Rows may be ragged;
// reads outside the grid return an empty cell.
type RawTable struct {
	SheetName string
	rows      [][]Cell
	width     int
}

func NewRawTable(sheetName string, rows [][]Cell) *RawTable {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	return &RawTable{
		SheetName: sheetName,
		rows:      rows,
		width:     width,
	}
}

// RowCount returns the number of loaded rows
func (t *RawTable) RowCount() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Width returns the column count of the longest row
func (t *RawTable) Width() int {
	if t == nil {
		return 0
	}
	return t.width
}

func (t *RawTable) HasColumn(col int) bool {
	return col >= 0 && col < t.Width()
}

func (t *RawTable) Cell(row, col int) Cell {
	if t == nil || row < 0 || row >= len(t.rows) || col < 0 {
		return EmptyCell()
	}

	cells := t.rows[row]
	if col >= len(cells) {
		return EmptyCell()
	}

	return cells[col]
}

func (t *RawTable) Row(row int) []Cell {
	if t == nil || row < 0 || row >= len(t.rows) {
		return nil
	}
	return t.rows[row]
}
