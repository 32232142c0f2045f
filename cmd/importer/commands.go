package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Cascadia376/cascadia-data-pipeline/infrastructure/database/postgres"
	"github.com/Cascadia376/cascadia-data-pipeline/infrastructure/repository"
	"github.com/Cascadia376/cascadia-data-pipeline/infrastructure/spreadsheet/excel"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/budgetsheet"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/config"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/usecases/authenticating"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/usecases/importing"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/usecases/reporting"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/usecases/setup"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/log"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/utils"
)

var errNoWorkbook = errors.New("no workbook given: pass --file or set IMPORT_FILE_PATH")

// cli holds what every command shares: the loaded configuration and the
// workbook selection flags.
type cli struct {
	loadConfig func() (*config.Config, error)
	cfg        *config.Config
	file       string
	sheet      string
}

func newRootCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	c := &cli{loadConfig: loadConfig}

	root := &cobra.Command{
		Use:           "importer",
		Short:         "Import the sales and budget workbook into PostgreSQL",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			log.Setup(cfg.App.LogLevel)
			c.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := c.writableSource()
			if err != nil {
				return err
			}

			conn, err := postgres.NewConnection(cmd.Context(), c.cfg.Database)
			if err != nil {
				return fmt.Errorf("connect to PostgreSQL: %w", err)
			}
			defer conn.Close()

			report, err := c.importer(conn).Run(cmd.Context(), source)
			if report != nil {
				printJSON(cmd.OutOrStdout(), report)
			}
			return err
		},
	}

	root.PersistentFlags().StringVar(&c.file, "file", "", "workbook to import (defaults to IMPORT_FILE_PATH)")
	root.PersistentFlags().StringVar(&c.sheet, "sheet", "", "sheet to import (defaults to IMPORT_SHEET_NAME)")

	root.AddCommand(
		c.newSetupCmd(),
		c.newVerifyCmd(),
		c.newCheckConnectionCmd(),
		c.newSummaryCmd(),
		c.newIssueTokenCmd(),
	)

	return root
}

func (c *cli) newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Deploy the schema, update store mappings, import and verify",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := c.writableSource()
			if err != nil {
				return err
			}

			conn, err := postgres.NewConnection(cmd.Context(), c.cfg.Database)
			if err != nil {
				return fmt.Errorf("connect to PostgreSQL: %w", err)
			}
			defer conn.Close()

			result, err := setupService(conn).Run(cmd.Context(), c.importer(conn), source)
			if result != nil {
				printJSON(cmd.OutOrStdout(), result)
			}
			return err
		},
	}
}

func (c *cli) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the deployed tables and row counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := postgres.NewConnection(cmd.Context(), c.cfg.Database)
			if err != nil {
				return fmt.Errorf("connect to PostgreSQL: %w", err)
			}
			defer conn.Close()

			verification, err := setupService(conn).Verify(cmd.Context())
			if err != nil {
				return err
			}
			printJSON(cmd.OutOrStdout(), verification)

			if !verification.Healthy() {
				return setup.ErrVerificationFailed
			}
			return nil
		},
	}
}

func (c *cli) newCheckConnectionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-connection",
		Short: "Report the server version and which pipeline tables exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := postgres.NewConnection(cmd.Context(), c.cfg.Database)
			if err != nil {
				return fmt.Errorf("connect to PostgreSQL: %w", err)
			}
			defer conn.Close()

			status, err := setupService(conn).CheckConnection(cmd.Context())
			if err != nil {
				return err
			}
			printJSON(cmd.OutOrStdout(), status)
			return nil
		},
	}
}

func (c *cli) newSummaryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print actual sales against budget for the top stores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", limit)
			}

			conn, err := postgres.NewConnection(cmd.Context(), c.cfg.Database)
			if err != nil {
				return fmt.Errorf("connect to PostgreSQL: %w", err)
			}
			defer conn.Close()

			summaries, err := reporting.NewService(repository.NewBudgetViewRepository(conn)).BudgetSummary(cmd.Context(), limit)
			if err != nil {
				return err
			}
			printJSON(cmd.OutOrStdout(), summaries)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", reporting.DefaultSummaryLimit, "number of stores to show, 0 for all")
	return cmd
}

func (c *cli) newIssueTokenCmd() *cobra.Command {
	var role int
	var ttl = authenticating.DefaultTokenTTL

	cmd := &cobra.Command{
		Use:   "issue-token <subject>",
		Short: "Issue a bearer token for the HTTP API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := authenticating.NewService(c.cfg.Auth.Secret).IssueToken(args[0], role, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().IntVar(&role, "role", domain.RoleSupervisor, "role id (1 admin, 2 supervisor, 3 viewer)")
	cmd.Flags().DurationVar(&ttl, "ttl", authenticating.DefaultTokenTTL, "token lifetime")
	return cmd
}

// writableSource resolves the workbook to import and refuses when the
// configuration does not allow database writes.
func (c *cli) writableSource() (importing.Source, error) {
	if writable, reason := c.cfg.WritesPermitted(); !writable {
		return importing.Source{}, fmt.Errorf("refusing to write: %s", reason)
	}

	source := importing.Source{Path: c.cfg.Import.FilePath, Sheet: c.cfg.Import.SheetName}
	if c.file != "" {
		source.Path = c.file
	}
	if c.sheet != "" {
		source.Sheet = c.sheet
	}
	if source.Path == "" {
		return importing.Source{}, errNoWorkbook
	}
	return source, nil
}

func (c *cli) importer(conn postgres.Conn) *importing.Service {
	layout := budgetsheet.DefaultLayout().WithFiscalYears(
		c.cfg.Import.HistoricalFiscalYear,
		c.cfg.Import.ForecastFiscalYear,
	)
	return importing.NewService(
		excel.NewLoader(),
		repository.NewHistoricalSalesRepository(conn),
		repository.NewBudgetForecastRepository(conn),
		layout,
	)
}

func setupService(conn postgres.Queryer) *setup.Service {
	return setup.NewService(
		repository.NewSetupRepository(conn),
		repository.NewStoreMappingRepository(conn),
	)
}

func printJSON(w io.Writer, v any) {
	fmt.Fprintln(w, utils.PrettyJson(v))
}
