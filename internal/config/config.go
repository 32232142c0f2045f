package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const EnvProduction = "prod"

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Import       Import       `mapstructure:",squash"`
	BudgetImport BudgetImport `mapstructure:",squash"`
	Safety       Safety       `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Env      string `mapstructure:"app_env" validate:"required"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port" validate:"required"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver" validate:"required"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url" validate:"required"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns" validate:"gte=1"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Import struct {
	FilePath             string `mapstructure:"import_file_path"`
	SheetName            string `mapstructure:"import_sheet_name" validate:"required"`
	HistoricalFiscalYear int    `mapstructure:"import_historical_fiscal_year" validate:"gte=2000,lte=2100"`
	ForecastFiscalYear   int    `mapstructure:"import_forecast_fiscal_year" validate:"gte=2000,lte=2100"`
}

type BudgetImport struct {
	CronSchedule string `mapstructure:"budget_import_cron" validate:"required"`
	SyncEnabled  bool   `mapstructure:"budget_import_sync_enabled"`
}

// Safety gates every operation that writes to the database.
type Safety struct {
	AllowWrites    bool `mapstructure:"allow_writes"`
	BackupVerified bool `mapstructure:"backup_verified"`
}

// WritesPermitted reports whether the process may write to the database and,
// when not, why.
func (c *Config) WritesPermitted() (bool, string) {
	if !c.Safety.AllowWrites {
		return false, "ALLOW_WRITES is not enabled"
	}
	if c.App.Env == EnvProduction && !c.Safety.BackupVerified {
		return false, "BACKUP_VERIFIED must be set before writing to production"
	}
	return true, ""
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_ENV", "dev")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/cascadia?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "postgres")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 5)

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("IMPORT_FILE_PATH", "")
	viper.SetDefault("IMPORT_SHEET_NAME", "FCST FY26")
	viper.SetDefault("IMPORT_HISTORICAL_FISCAL_YEAR", 2025)
	viper.SetDefault("IMPORT_FORECAST_FISCAL_YEAR", 2026)

	viper.SetDefault("BUDGET_IMPORT_CRON", "0 2 * * *") // every day at 2am
	viper.SetDefault("BUDGET_IMPORT_SYNC_ENABLED", false)

	viper.SetDefault("ALLOW_WRITES", false)
	viper.SetDefault("BACKUP_VERIFIED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("using environment only, viper could not read .env: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.App.LogLevel = strings.ToLower(config.App.LogLevel)
	config.Database.DSN = BuildDSN(config.Database)

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

func BuildDSN(db Database) string {
	return fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
}

func Validate(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug(".env loaded from ", location)
			return
		}
	}
}
