package domain

import (
	"fmt"
	"time"
)

// CellKind identifies the type of value held by a spreadsheet cell
type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellText
	CellDate
)

func (k CellKind) String() string {
	switch k {
	case CellNumber:
		return "number"
	case CellText:
		return "text"
	case CellDate:
		return "date"
	default:
		return "empty"
	}
}

// Cell is a closed variant over the values a spreadsheet cell can hold.
// Only the field matching Kind is meaningful.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
	Date   time.Time
}

func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

func DateCell(t time.Time) Cell {
	return Cell{Kind: CellDate, Date: t}
}

func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return fmt.Sprintf("%g", c.Number)
	case CellText:
		return fmt.Sprintf("%q", c.Text)
	case CellDate:
		return c.Date.Format(time.DateOnly)
	default:
		return "<empty>"
	}
}
