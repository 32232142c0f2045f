package importing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/budgetsheet"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/usecases/importing"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/usecases/importing/mocks"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/metrics"
)

const workbook = "/data/Cascadia Daily Sales & Budget Data.xlsx"

var source = importing.Source{Path: workbook, Sheet: budgetsheet.DefaultSheetName}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// sheet has Colwood at G/H and Quadra at I/J, one good row and one row with a
// broken prior-year date.
func sheet() *domain.RawTable {
	e := domain.EmptyCell()
	n := domain.NumberCell
	s := domain.TextCell
	dc := func(t time.Time) domain.Cell { return domain.DateCell(t) }

	return domain.NewRawTable(budgetsheet.DefaultSheetName, [][]domain.Cell{
		{s("Day"), s("Day Name"), s("FY25"), s("FY26"), e, e, s("Colwood"), e, s("Quadra"), e},
		{e, e, e, e, e, e, n(5.0), e, n(-2.5), e},
		{e, e, e, e, e, e, s("Actual"), s("Budget"), s("Actual"), s("Budget")},
		{n(1), s("Sunday"), dc(day(2024, 7, 7)), dc(day(2025, 7, 6)), e, e, n(1000), n(1100), e, n(900)},
		{n(2), s("Monday"), s("not-a-date"), dc(day(2025, 7, 7)), e, e, n(1200), n(1300), n(800), n(850)},
	})
}

type fixture struct {
	loader     *mocks.MockTableLoader
	historical *mocks.MockHistoricalSink
	forecast   *mocks.MockForecastSink
	service    *importing.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:     mocks.NewMockTableLoader(ctrl),
		historical: mocks.NewMockHistoricalSink(ctrl),
		forecast:   mocks.NewMockForecastSink(ctrl),
	}
	f.service = importing.NewService(f.loader, f.historical, f.forecast, budgetsheet.DefaultLayout()).
		WithMetrics(metrics.New())
	return f
}

func TestService_Run(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.loader.EXPECT().Load(gomock.Any(), workbook, budgetsheet.DefaultSheetName).Return(sheet(), nil)
	f.historical.EXPECT().
		ImportHistorical(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []domain.HistoricalRecord) (domain.BatchResult, error) {
			require.Len(t, records, 1)
			assert.Equal(t, domain.HistoricalRecord{
				StoreName:   "Colwood",
				SaleDate:    day(2024, 7, 7),
				DayOfWeek:   "Sunday",
				DayNumber:   1,
				FiscalYear:  2025,
				SalesAmount: 1000,
				DataType:    domain.RecordKindActual,
			}, records[0])
			return domain.BatchResult{Accepted: 1}, nil
		})
	f.forecast.EXPECT().
		ImportForecast(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []domain.ForecastRecord) (domain.BatchResult, error) {
			require.Len(t, records, 2)
			assert.Equal(t, "Colwood", records[0].StoreName)
			assert.Equal(t, 5.0, records[0].VarianceAdjustment)
			assert.Equal(t, "Quadra", records[1].StoreName)
			assert.Equal(t, -2.5, records[1].VarianceAdjustment)
			return domain.BatchResult{Accepted: 1, Rejected: 1}, nil
		})

	report, err := f.service.Run(ctx, source)
	require.NoError(t, err)

	assert.True(t, report.Success)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, workbook, report.SourceFile)
	assert.Equal(t, 2, report.StoresDiscovered)
	assert.Equal(t, 2, report.RowsScanned)
	assert.Equal(t, 1, report.RowsAccepted)
	assert.Equal(t, 1, report.RowsSkipped)
	assert.Equal(t, map[domain.SkipReason]int{domain.SkipInvalidPriorYearDate: 1}, report.SkippedByReason)
	assert.Equal(t, 3, report.RecordsExtracted())
	assert.Equal(t, 2, report.RecordsAccepted())
	assert.Equal(t, domain.BatchResult{Accepted: 1, Rejected: 1}, report.Forecast)
	assert.False(t, report.CompletedAt.Before(report.StartedAt))
}

func TestService_Run_LoadFailure(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrTableLoad)

	report, err := f.service.Run(context.Background(), source)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTableLoad)

	var importErr *importing.ImportError
	require.True(t, errors.As(err, &importErr))
	assert.Equal(t, importing.StageLoad, importErr.Stage)

	assert.False(t, report.Success)
	assert.Equal(t, err.Error(), report.Error)
}

func TestService_Run_NoStoreColumns(t *testing.T) {
	f := newFixture(t)

	table := domain.NewRawTable(budgetsheet.DefaultSheetName, [][]domain.Cell{
		{domain.TextCell("Day"), domain.TextCell("Victoria")},
	})
	f.loader.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).Return(table, nil)

	report, err := f.service.Run(context.Background(), source)

	assert.ErrorIs(t, err, domain.ErrNoStoreColumns)
	assert.False(t, report.Success)
	assert.Zero(t, report.StoresDiscovered)
}

func TestService_Run_SinkUnavailable(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).Return(sheet(), nil)
	f.historical.EXPECT().ImportHistorical(gomock.Any(), gomock.Any()).
		Return(domain.BatchResult{}, domain.ErrSinkUnavailable)

	report, err := f.service.Run(context.Background(), source)

	assert.ErrorIs(t, err, domain.ErrSinkUnavailable)

	var importErr *importing.ImportError
	require.True(t, errors.As(err, &importErr))
	assert.Equal(t, importing.StagePersistHistorical, importErr.Stage)

	assert.False(t, report.Success)
	assert.Equal(t, 3, report.RecordsExtracted())
	assert.Zero(t, report.RecordsAccepted())
}

func TestService_Run_ForecastSinkUnavailable(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).Return(sheet(), nil)
	f.historical.EXPECT().ImportHistorical(gomock.Any(), gomock.Any()).Return(domain.BatchResult{Accepted: 1}, nil)
	f.forecast.EXPECT().ImportForecast(gomock.Any(), gomock.Any()).
		Return(domain.BatchResult{}, domain.ErrSinkUnavailable)

	report, err := f.service.Run(context.Background(), source)

	var importErr *importing.ImportError
	require.True(t, errors.As(err, &importErr))
	assert.Equal(t, importing.StagePersistForecast, importErr.Stage)
	assert.Equal(t, 1, report.Historical.Accepted)
}

func TestService_Run_EachRunHasItsOwnID(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrTableLoad).Times(2)

	first, _ := f.service.Run(context.Background(), source)
	second, _ := f.service.Run(context.Background(), source)

	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestImportError(t *testing.T) {
	err := &importing.ImportError{Err: domain.ErrTableLoad, Stage: importing.StageLoad, Details: "budget.xlsx"}
	assert.Equal(t, "import failed at load (budget.xlsx): unable to load spreadsheet table", err.Error())

	err = &importing.ImportError{Err: domain.ErrNoStoreColumns, Stage: importing.StageDiscover}
	assert.Equal(t, "import failed at discover: no store columns found in header row", err.Error())
}
