// Package setup deploys and verifies the sales and budget database.
package setup

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Cascadia376/cascadia-data-pipeline/infrastructure/database/schema"
	"github.com/Cascadia376/cascadia-data-pipeline/infrastructure/repository"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/usecases/importing"
)

var ErrVerificationFailed = errors.New("setup verification found missing data")

// Tables checked by Verify.
var verifiedTables = []string{"historical_daily_sales", "budget_forecasts", "store_name_mapping"}

type Service struct {
	setupRepo   repository.SetupRepository
	mappingRepo repository.StoreMappingRepository
	mappings    []domain.StoreMapping
}

func NewService(
	setupRepo repository.SetupRepository,
	mappingRepo repository.StoreMappingRepository,
) *Service {
	return &Service{
		setupRepo:   setupRepo,
		mappingRepo: mappingRepo,
		mappings:    domain.DefaultStoreMappings,
	}
}

// MappingResult lists which workbook stores were linked to a database store.
type MappingResult struct {
	Mapped   map[string]int64 `json:"mapped"`
	Unmapped []string         `json:"unmapped"`
}

// ConnectionStatus is what CheckConnection learned about the database.
type ConnectionStatus struct {
	ServerVersion string   `json:"server_version"`
	Tables        []string `json:"tables"`
}

// Result summarises a full setup run.
type Result struct {
	Mappings     *MappingResult            `json:"mappings,omitempty"`
	Import       *domain.ImportReport      `json:"import,omitempty"`
	Verification *domain.SetupVerification `json:"verification,omitempty"`
}

func (s *Service) DeploySchema(ctx context.Context) error {
	logrus.Info("deploying sales budget schema")
	if err := s.setupRepo.DeploySchema(ctx); err != nil {
		return err
	}
	logrus.Info("sales budget schema deployed")
	return nil
}

// UpdateStoreMappings links every known workbook store to its database store.
// A store missing from the database is reported, not treated as a failure.
func (s *Service) UpdateStoreMappings(ctx context.Context) (*MappingResult, error) {
	stores, err := s.mappingRepo.ListStores(ctx)
	if err != nil {
		return nil, err
	}
	logrus.Infof("found %d stores in database", len(stores))

	result := &MappingResult{
		Mapped:   make(map[string]int64, len(s.mappings)),
		Unmapped: make([]string, 0),
	}

	for _, m := range s.mappings {
		storeID, ok, err := s.mappingRepo.MapStore(ctx, m.ExcelName, m.DatabaseName)
		if err != nil {
			return nil, err
		}

		logger := logrus.WithField("store", m.ExcelName)
		if !ok {
			logger.Warnf("could not map to %q", m.DatabaseName)
			result.Unmapped = append(result.Unmapped, m.ExcelName)
			continue
		}

		logger.Infof("mapped to store_id %d (%s)", storeID, m.DatabaseName)
		result.Mapped[m.ExcelName] = storeID
	}

	return result, nil
}

// Verify counts what the setup left behind. The counts run concurrently.
func (s *Service) Verify(ctx context.Context) (*domain.SetupVerification, error) {
	v := &domain.SetupVerification{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		tables, err := s.setupRepo.ExistingTables(gctx, verifiedTables)
		v.Tables = tables
		return err
	})

	counters := map[string]*int64{
		repository.CountHistorical:   &v.HistoricalCount,
		repository.CountForecast:     &v.ForecastCount,
		repository.CountMappedStores: &v.MappedStores,
		repository.CountViewRows:     &v.ViewRows,
	}
	for counter, dst := range counters {
		counter, dst := counter, dst
		g.Go(func() error {
			n, err := s.setupRepo.Count(gctx, counter)
			*dst = n
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("verify setup: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"tables":        v.Tables,
		"historical":    v.HistoricalCount,
		"forecast":      v.ForecastCount,
		"mapped_stores": v.MappedStores,
		"view_rows":     v.ViewRows,
	}).Info("setup verification counts")

	return v, nil
}

func (s *Service) CheckConnection(ctx context.Context) (*ConnectionStatus, error) {
	version, err := s.setupRepo.ServerVersion(ctx)
	if err != nil {
		return nil, err
	}

	tables, err := s.setupRepo.ExistingTables(ctx, schema.Tables)
	if err != nil {
		return nil, err
	}

	return &ConnectionStatus{ServerVersion: version, Tables: tables}, nil
}

// Run deploys the schema, links store names, imports source and verifies the
// result. It stops at the first failing step.
func (s *Service) Run(ctx context.Context, importer importing.Importer, source importing.Source) (*Result, error) {
	result := &Result{}

	if err := s.DeploySchema(ctx); err != nil {
		return result, err
	}

	mappings, err := s.UpdateStoreMappings(ctx)
	if err != nil {
		return result, err
	}
	result.Mappings = mappings

	report, err := importer.Run(ctx, source)
	result.Import = report
	if err != nil {
		return result, err
	}

	verification, err := s.Verify(ctx)
	if err != nil {
		return result, err
	}
	result.Verification = verification

	if !verification.Healthy() {
		return result, ErrVerificationFailed
	}

	return result, nil
}
