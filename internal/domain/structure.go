package domain

// StoreColumn binds a worksheet column to a canonical store name.
type StoreColumn struct {
	Column int
	Store  string
}

// DateColumns holds the fixed positions of the day and date columns.
type DateColumns struct {
	DayNumber        int
	DayName          int
	PriorYearDate    int
	CurrentYearDate  int
	CurrentDayNumber int
	CurrentDayName   int
}

// StructureMap describes where each store lives in the sheet. It is built once
// per import run and never mutated afterwards.
type StructureMap struct {
	storeColumns []StoreColumn
	DateColumns  DateColumns
	DataStartRow int
}

func NewStructureMap(storeColumns []StoreColumn, dateColumns DateColumns, dataStartRow int) StructureMap {
	cols := make([]StoreColumn, len(storeColumns))
	copy(cols, storeColumns)

	return StructureMap{
		storeColumns: cols,
		DateColumns:  dateColumns,
		DataStartRow: dataStartRow,
	}
}

// StoreColumns returns the store columns in column order.
func (s StructureMap) StoreColumns() []StoreColumn {
	cols := make([]StoreColumn, len(s.storeColumns))
	copy(cols, s.storeColumns)
	return cols
}

func (s StructureMap) StoreCount() int {
	return len(s.storeColumns)
}

func (s StructureMap) Stores() []string {
	stores := make([]string, 0, len(s.storeColumns))
	for _, col := range s.storeColumns {
		stores = append(stores, col.Store)
	}
	return stores
}

// AdjustmentMap maps a canonical store name to its variance adjustment factor.
type AdjustmentMap map[string]float64

func (a AdjustmentMap) For(store string) float64 {
	return a[store]
}
