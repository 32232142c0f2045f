package budgetsheet

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
)

// DiscoverStructure scans the header row for known store names. Unknown
// headers are spacer or label columns and are skipped. When no store is
// found the (empty) map is still returned alongside ErrNoStoreColumns.
func DiscoverStructure(table *domain.RawTable, layout Layout) (domain.StructureMap, error) {
	storeColumns := make([]domain.StoreColumn, 0)
	seen := make(map[string]int)

	for col, cell := range table.Row(layout.HeaderRow) {
		header, ok := TextValue(cell)
		if !ok {
			continue
		}

		store, ok := domain.LookupStore(header)
		if !ok {
			continue
		}

		if first, dup := seen[store]; dup {
			logrus.WithFields(logrus.Fields{
				"store":        store,
				"column":       col,
				"first_column": first,
			}).Warn("Duplicate store header ignored")
			continue
		}

		seen[store] = col
		storeColumns = append(storeColumns, domain.StoreColumn{Column: col, Store: store})
		logrus.WithFields(logrus.Fields{
			"store":  store,
			"column": col,
		}).Debug("Store column found")
	}

	structure := domain.NewStructureMap(storeColumns, layout.DateColumns, layout.DataStartRow)

	if structure.StoreCount() == 0 {
		return structure, fmt.Errorf("%w (sheet %q, row %d)", domain.ErrNoStoreColumns, table.SheetName, layout.HeaderRow)
	}

	logrus.WithField("stores", structure.StoreCount()).Info("Sheet structure parsed")
	return structure, nil
}
