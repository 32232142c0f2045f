// Package scheduler runs the budget workbook import on a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/config"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/usecases/importing"
)

var ErrSourceNotConfigured = errors.New("IMPORT_FILE_PATH is not configured")

type BudgetImportConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type BudgetImportSyncService struct {
	scheduler *gocron.Scheduler
	importer  importing.Importer
	source    importing.Source
	config    BudgetImportConfig

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.ImportReport
	lastError           string
}

func NewBudgetImportSyncService(importer importing.Importer, cfg *config.Config) *BudgetImportSyncService {
	importConfig := BudgetImportConfig{
		CronSchedule: cfg.BudgetImport.CronSchedule,
		SyncEnabled:  cfg.BudgetImport.SyncEnabled,
	}

	logrus.WithField("cron_schedule", importConfig.CronSchedule).Info("budget import scheduler configured")

	return &BudgetImportSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		importer:  importer,
		source:    importing.Source{Path: cfg.Import.FilePath, Sheet: cfg.Import.SheetName},
		config:    importConfig,
	}
}

func (s *BudgetImportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("scheduled budget import disabled by configuration")
		return nil
	}
	if s.source.Path == "" {
		return ErrSourceNotConfigured
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunImport(ctx); err != nil && !errors.Is(err, domain.ErrImportRunning) {
			logrus.WithError(err).Error("scheduled budget import failed")
		}
	})
	if err != nil {
		return fmt.Errorf("schedule budget import: %w", err)
	}

	s.scheduler.StartAsync()
	logrus.WithField("cron", s.config.CronSchedule).Info("budget import scheduler started")

	go func() {
		<-ctx.Done()
		logrus.Info("stopping budget import scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunImport imports the configured workbook and waits for the result. Only one
// import runs at a time; a concurrent call gets domain.ErrImportRunning.
func (s *BudgetImportSyncService) RunImport(ctx context.Context) (*domain.ImportReport, error) {
	if s.source.Path == "" {
		return nil, ErrSourceNotConfigured
	}
	if !s.acquire() {
		logrus.Warn("budget import already running, ignoring request")
		return nil, domain.ErrImportRunning
	}
	return s.run(ctx)
}

// TriggerManualSync starts an import in the background.
func (s *BudgetImportSyncService) TriggerManualSync() error {
	if s.source.Path == "" {
		return ErrSourceNotConfigured
	}
	if !s.acquire() {
		logrus.Info("budget import already running, ignoring manual request")
		return domain.ErrImportRunning
	}

	logrus.Info("starting manual budget import")
	go func() {
		if _, err := s.run(context.Background()); err != nil {
			logrus.WithError(err).Error("manual budget import failed")
		}
	}()
	return nil
}

func (s *BudgetImportSyncService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *BudgetImportSyncService) run(ctx context.Context) (report *domain.ImportReport, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("budget import panicked: %v", p)
		}
		s.finish(report, err)
	}()

	return s.importer.Run(ctx, s.source)
}

func (s *BudgetImportSyncService) finish(report *domain.ImportReport, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastReport = report
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

func (s *BudgetImportSyncService) Running() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

func (s *BudgetImportSyncService) LastReport() *domain.ImportReport {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastReport
}

func (s *BudgetImportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"source_file":            s.source.Path,
		"sheet_name":             s.source.Sheet,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_error":             s.lastError,
		"last_report":            s.lastReport,
	}
}
