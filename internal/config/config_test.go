package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:      App{LogLevel: "info", Env: "dev"},
		Server:   Server{Port: "8000"},
		Database: Database{Driver: "postgres", URL: "localhost:5432/cascadia", MaxOpenConns: 5},
		Import:   Import{SheetName: "FCST FY26", HistoricalFiscalYear: 2025, ForecastFiscalYear: 2026},
		BudgetImport: BudgetImport{
			CronSchedule: "0 2 * * *",
		},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(validConfig()))

	cfg := validConfig()
	cfg.Import.SheetName = ""
	assert.Error(t, Validate(cfg))

	cfg = validConfig()
	cfg.App.LogLevel = "verbose"
	assert.Error(t, Validate(cfg))

	cfg = validConfig()
	cfg.Import.ForecastFiscalYear = 26
	assert.Error(t, Validate(cfg))
}

func TestWritesPermitted(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		allow   bool
		backup  bool
		want    bool
		message string
	}{
		{name: "writes disabled", env: "dev", want: false, message: "ALLOW_WRITES is not enabled"},
		{name: "dev with writes", env: "dev", allow: true, want: true},
		{name: "prod without backup", env: EnvProduction, allow: true, want: false, message: "BACKUP_VERIFIED must be set before writing to production"},
		{name: "prod with backup", env: EnvProduction, allow: true, backup: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Env = tt.env
			cfg.Safety = Safety{AllowWrites: tt.allow, BackupVerified: tt.backup}

			ok, reason := cfg.WritesPermitted()
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.message, reason)
		})
	}
}

func TestBuildDSN(t *testing.T) {
	dsn := BuildDSN(Database{Driver: "postgres", User: "svc", Password: "pw", URL: "db:5432/cascadia"})
	assert.Equal(t, "postgres://svc:pw@db:5432/cascadia", dsn)
}
