package budgetsheet

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
)

// IsAbsent reports whether the cell carries no value at all.
func IsAbsent(c domain.Cell) bool {
	if c.Kind == domain.CellEmpty {
		return true
	}
	return c.Kind == domain.CellNumber && math.IsNaN(c.Number)
}

// NumericValue accepts any finite number, including zero and negatives.
func NumericValue(c domain.Cell) (float64, bool) {
	if c.Kind != domain.CellNumber {
		return 0, false
	}
	if math.IsNaN(c.Number) || math.IsInf(c.Number, 0) {
		return 0, false
	}
	return c.Number, true
}

// PositiveAmount accepts numbers strictly greater than zero. Anything else is
// treated as an absent amount.
func PositiveAmount(c domain.Cell) (float64, bool) {
	v, ok := NumericValue(c)
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

// TextValue accepts strings that are non-empty once trimmed.
func TextValue(c domain.Cell) (string, bool) {
	if c.Kind != domain.CellText {
		return "", false
	}
	s := strings.TrimSpace(c.Text)
	if s == "" {
		return "", false
	}
	return s, true
}

// DateValue accepts native dates as-is and strings in the given layout.
func DateValue(c domain.Cell, layout string) (time.Time, bool) {
	switch c.Kind {
	case domain.CellDate:
		y, m, d := c.Date.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	case domain.CellText:
		t, err := time.Parse(layout, c.Text)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	default:
		return time.Time{}, false
	}
}

// IntegerValue truncates numbers and parses integer strings.
func IntegerValue(c domain.Cell) (int, bool) {
	switch c.Kind {
	case domain.CellNumber:
		v, ok := NumericValue(c)
		if !ok {
			return 0, false
		}
		return int(math.Trunc(v)), true
	case domain.CellText:
		n, err := strconv.Atoi(strings.TrimSpace(c.Text))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
