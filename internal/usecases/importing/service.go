// Package importing drives a budget workbook import from file to database.
package importing

import (
	"context"
	"time"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/budgetsheet"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/log"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/metrics"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/utils"
)

// Source locates the sheet to import.
type Source struct {
	Path  string
	Sheet string
}

type Service struct {
	loader     TableLoader
	historical HistoricalSink
	forecast   ForecastSink
	layout     budgetsheet.Layout
	metrics    *metrics.Metrics
	now        func() time.Time
}

func NewService(
	loader TableLoader,
	historical HistoricalSink,
	forecast ForecastSink,
	layout budgetsheet.Layout,
) *Service {
	return &Service{
		loader:     loader,
		historical: historical,
		forecast:   forecast,
		layout:     layout,
		now:        time.Now,
	}
}

// WithMetrics records every run on m.
func (s *Service) WithMetrics(m *metrics.Metrics) *Service {
	s.metrics = m
	return s
}

// Run loads the sheet, extracts both record streams and hands them to the
// sinks. The report is always returned, filled as far as the run got; the
// error is non-nil only for fatal failures.
func (s *Service) Run(ctx context.Context, source Source) (*domain.ImportReport, error) {
	runID := utils.GenerateRunID()
	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx).WithField("sheet", source.Sheet)

	report := &domain.ImportReport{
		RunID:      runID,
		SourceFile: source.Path,
		SheetName:  source.Sheet,
		StartedAt:  s.now(),
	}
	defer s.observe(report)

	logger.Infof("starting budget import from %s", source.Path)

	table, err := s.loader.Load(ctx, source.Path, source.Sheet)
	if err != nil {
		return s.fail(report, &ImportError{Err: err, Stage: StageLoad, Details: source.Path})
	}

	structure, err := budgetsheet.DiscoverStructure(table, s.layout)
	if err != nil {
		return s.fail(report, &ImportError{Err: err, Stage: StageDiscover})
	}
	report.StoresDiscovered = structure.StoreCount()

	adjustments := budgetsheet.ExtractAdjustments(table, structure, s.layout)
	extraction := budgetsheet.ProcessRows(table, structure, adjustments, s.layout)
	report.ApplyExtraction(extraction)

	logger.WithFields(log.Fields{
		"records_historical": report.HistoricalExtracted,
		"records_forecast":   report.ForecastExtracted,
	}).Infof("scanned %d rows, %d skipped", report.RowsScanned, report.RowsSkipped)

	report.Historical, err = s.historical.ImportHistorical(ctx, extraction.HistoricalRecords())
	if err != nil {
		return s.fail(report, &ImportError{Err: err, Stage: StagePersistHistorical})
	}

	report.Forecast, err = s.forecast.ImportForecast(ctx, extraction.ForecastRecords())
	if err != nil {
		return s.fail(report, &ImportError{Err: err, Stage: StagePersistForecast})
	}

	report.Success = true
	report.CompletedAt = s.now()

	logger.WithFields(log.Fields{
		"records_accepted": report.RecordsAccepted(),
		"records_rejected": report.Historical.Rejected + report.Forecast.Rejected,
	}).Infof("budget import finished in %s", report.CompletedAt.Sub(report.StartedAt))

	return report, nil
}

func (s *Service) fail(report *domain.ImportReport, err *ImportError) (*domain.ImportReport, error) {
	report.Success = false
	report.Error = err.Error()
	report.CompletedAt = s.now()

	log.L.WithField("run_id", report.RunID).WithError(err).Error("budget import aborted")

	return report, err
}

func (s *Service) observe(report *domain.ImportReport) {
	if s.metrics == nil {
		return
	}

	skipped := make(map[string]int, len(report.SkippedByReason))
	for reason, n := range report.SkippedByReason {
		skipped[string(reason)] = n
	}

	s.metrics.ObserveImport(metrics.ImportRun{
		Success:         report.Success,
		Duration:        report.CompletedAt.Sub(report.StartedAt),
		RowsAccepted:    report.RowsAccepted,
		SkippedByReason: skipped,
		Historical: metrics.StreamResult{
			Extracted: report.HistoricalExtracted,
			Accepted:  report.Historical.Accepted,
			Rejected:  report.Historical.Rejected,
		},
		Forecast: metrics.StreamResult{
			Extracted: report.ForecastExtracted,
			Accepted:  report.Forecast.Accepted,
			Rejected:  report.Forecast.Rejected,
		},
	})
}
