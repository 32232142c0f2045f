package budgetsheet

import (
	"github.com/sirupsen/logrus"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
)

// ExtractAdjustments reads the variance adjustment row. Every discovered store
// gets an entry; blank or non-numeric cells default to zero.
func ExtractAdjustments(table *domain.RawTable, structure domain.StructureMap, layout Layout) domain.AdjustmentMap {
	adjustments := make(domain.AdjustmentMap, structure.StoreCount())

	for _, sc := range structure.StoreColumns() {
		value, ok := NumericValue(table.Cell(layout.AdjustmentRow, sc.Column))
		if !ok {
			adjustments[sc.Store] = 0.0
			continue
		}

		adjustments[sc.Store] = value
		logrus.WithFields(logrus.Fields{
			"store":      sc.Store,
			"adjustment": value,
		}).Debug("Variance adjustment found")
	}

	return adjustments
}
