package domain

// CanonicalStores is the fixed dictionary of store headers recognised in the
// budget workbook. Matching is exact and case-sensitive.
var CanonicalStores = []string{
	"Colwood",
	"Quadra",
	"Crown",
	"Uptown",
	"Langford",
	"Eagle Creek",
	"Nanoose",
	"Parksville",
	"Caddy Bay",
	"Port A",
	"Royal B",
	"Allandale",
	"Bear",
}

var canonicalStoreSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(CanonicalStores))
	for _, name := range CanonicalStores {
		set[name] = struct{}{}
	}
	return set
}()

// LookupStore returns the canonical name for a header, if it is a known store.
func LookupStore(header string) (string, bool) {
	if _, ok := canonicalStoreSet[header]; !ok {
		return "", false
	}
	return header, true
}

var weekdayOrdinals = map[string]int{
	"Sunday":    1,
	"Monday":    2,
	"Tuesday":   3,
	"Wednesday": 4,
	"Thursday":  5,
	"Friday":    6,
	"Saturday":  7,
}

// WeekdayOrdinal maps a day name to 1..7 with Sunday=1.
func WeekdayOrdinal(dayName string) (int, bool) {
	ordinal, ok := weekdayOrdinals[dayName]
	return ordinal, ok
}

// StoreMapping links a workbook store name to the store's name in the database.
type StoreMapping struct {
	ExcelName    string `json:"excel_store_name"`
	DatabaseName string `json:"store_name"`
}

// DefaultStoreMappings lists the known workbook-to-database store names.
// Bear has no database store yet.
var DefaultStoreMappings = []StoreMapping{
	{ExcelName: "Quadra", DatabaseName: "Cascadia Quadra Village"},
	{ExcelName: "Crown", DatabaseName: "Cascadia Courtenay (Crown Isle)"},
	{ExcelName: "Uptown", DatabaseName: "Cascadia Uptown"},
	{ExcelName: "Langford", DatabaseName: "Cascadia Langford"},
	{ExcelName: "Eagle Creek", DatabaseName: "Cascadia Eagle Creek"},
	{ExcelName: "Nanoose", DatabaseName: "Cascadia Nanoose Bay"},
	{ExcelName: "Parksville", DatabaseName: "Cascadia Parksville"},
	{ExcelName: "Caddy Bay", DatabaseName: "Cascadia Caddy Bay"},
	{ExcelName: "Port A", DatabaseName: "Cascadia Port Alberni"},
	{ExcelName: "Royal B", DatabaseName: "Cascadia Royal Bay"},
	{ExcelName: "Allandale", DatabaseName: "Cascadia Allandale"},
	{ExcelName: "Colwood", DatabaseName: "Cascadia Hatley Park"},
}

// Store is a row of the store table.
type Store struct {
	ID   int64  `json:"store_id"`
	Name string `json:"name"`
}
