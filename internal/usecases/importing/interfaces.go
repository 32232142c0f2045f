package importing

import (
	"context"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_importing.go -package=mocks

// TableLoader reads one sheet of a workbook into a RawTable.
type TableLoader interface {
	Load(ctx context.Context, path, sheet string) (*domain.RawTable, error)
}

// HistoricalSink persists actual sales records.
type HistoricalSink interface {
	ImportHistorical(ctx context.Context, records []domain.HistoricalRecord) (domain.BatchResult, error)
}

// ForecastSink persists budget forecast records.
type ForecastSink interface {
	ImportForecast(ctx context.Context, records []domain.ForecastRecord) (domain.BatchResult, error)
}

// Importer runs a complete import of a budget workbook.
type Importer interface {
	Run(ctx context.Context, source Source) (*domain.ImportReport, error)
}
