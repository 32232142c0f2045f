package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Cascadia376/cascadia-data-pipeline/infrastructure/database/postgres"
	"github.com/Cascadia376/cascadia-data-pipeline/infrastructure/repository"
	"github.com/Cascadia376/cascadia-data-pipeline/infrastructure/spreadsheet/excel"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/api"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/budgetsheet"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/config"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/scheduler"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/usecases/authenticating"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/usecases/importing"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/usecases/reporting"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/log"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	if cfg.Auth.Secret == "" {
		logrus.Fatal("AUTH_SECRET is required to run the API")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	m := metrics.New()

	layout := budgetsheet.DefaultLayout().WithFiscalYears(
		cfg.Import.HistoricalFiscalYear,
		cfg.Import.ForecastFiscalYear,
	)

	importer := importing.NewService(
		excel.NewLoader(),
		repository.NewHistoricalSalesRepository(pgConn),
		repository.NewBudgetForecastRepository(pgConn),
		layout,
	).WithMetrics(m)

	importSync := scheduler.NewBudgetImportSyncService(importer, cfg)

	reportingService := reporting.NewService(repository.NewBudgetViewRepository(pgConn))

	deps := api.Dependencies{
		Authenticator: authenticating.NewService(cfg.Auth.Secret),
		Reporting:     reportingService,
		Database:      pgConn,
		Metrics:       m,
	}
	if writable, reason := cfg.WritesPermitted(); writable {
		deps.Imports = importSync
		if err := importSync.Start(ctx); err != nil {
			logrus.WithError(err).Error("error starting budget import scheduler")
		}
	} else {
		logrus.WithField("reason", reason).Warn("budget imports disabled")
	}

	server, err := api.New(cfg, deps)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("error connecting to PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
