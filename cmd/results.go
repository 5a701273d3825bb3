package cmd

import (
	"fmt"

	"github.com/lumenkit/kbscore/internal/contract"
	"github.com/lumenkit/kbscore/internal/resultstore"
	"github.com/lumenkit/kbscore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resultsSetup loads minimal configuration needed for result store operations.
// This is used by commands that need store access without full shared setup.
func resultsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	// Handle empty backend as SQLite so 'results' commands work out of the box
	backend := schema.DatabaseBackend(backendStr)
	if backendStr == "" || backend == schema.NoneBackend {
		backend = schema.SQLiteBackend
	}

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetResultsDBFilePath()
	}

	store, err := resultstore.NewStore(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to initialize result store: %w", err)
	}
	resultStore = store

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")

	return nil
}

// resultsSetupWrapper wraps resultsSetup to provide PreRunE for results commands.
func resultsSetupWrapper(_ *cobra.Command, _ []string) error {
	return resultsSetup()
}

// resultsMigrateSetup loads minimal configuration needed for migrate operations.
// This specialized setup does NOT open the store or create tables, allowing
// migrations to run on a fresh database.
func resultsMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	backend := schema.DatabaseBackend(backendStr)
	if backendStr == "" || backend == schema.NoneBackend {
		backend = schema.SQLiteBackend
	}

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetResultsDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// resultsMigrateSetupWrapper wraps resultsMigrateSetup to provide PreRunE for migrate command.
func resultsMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return resultsMigrateSetup()
}

// resultsCmd focused on scoring run history management.
//
// Note: results subcommands use minimal initialization (resultsSetup) instead
// of the full sharedSetup used by scoring commands. This avoids snapshot
// validation and config processing for simple store operations.
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Manage stored scoring runs and exports",
	Long: `Manage historical scoring runs used for trend tracking and reporting.

When scoring runs with --persist, kbscore stores:
- Run metadata (vertical, total score, status, timestamp)
- Per-field sub-scores for every evaluated field

This enables longitudinal tracking of knowledge base health as content
teams fill gaps, and data export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL

Subcommands:
  status  - Show stored run statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all stored runs
  migrate - Run database schema migrations

Examples:
  # Check store status
  kbscore results status

  # Export for analysis in pandas/DuckDB
  kbscore results export --output-file kbscore-data`,
}

// resultsStatusCmd shows result store status.
var resultsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display result store statistics and connection details",
	Long: `Show detailed information about stored scoring runs.

Displays:
- Backend type and connection status
- Total number of scoring runs stored
- Last and oldest run timestamps
- Total field score rows

Examples:
  # Check store status
  kbscore results status`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := resultStore.GetStatus(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		resultstore.PrintStatus(status)
	},
}

// resultsExportCmd exports stored runs to Parquet files.
var resultsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored runs to Parquet for BI tools and analytics",
	Long: `Export all stored scoring data to Parquet format.

Exports two datasets:
- Scoring runs - metadata about each run
- Field scores - per-field sub-scores for every run

Requires: --output-file parameter

Examples:
  # Export all data
  kbscore results export --output-file kbscore-data

  # Use with DuckDB for analysis
  kbscore results export --output-file data
  duckdb -c "SELECT * FROM read_parquet('data.runs.parquet') LIMIT 10"`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := resultstore.ExportToParquet(rootCtx, resultStore, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export scoring runs", err)
		}
	},
}

// resultsClearCmd clears the stored runs.
var resultsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored scoring runs",
	Long: `Delete all stored scoring runs and their field score history.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  kbscore results export --output-file backup
  kbscore results clear`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := resultStore.Clear(rootCtx); err != nil {
			contract.LogFatal("Failed to clear stored runs", err)
		}
		fmt.Println("Stored scoring runs cleared successfully.")
	},
}

// resultsMigrateCmd runs database migrations for the result store.
var resultsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the result store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  kbscore results migrate

  # Migrate to specific version
  kbscore results migrate --target-version 1

  # Rollback to initial state
  kbscore results migrate --target-version 0`,
	PreRunE: resultsMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := resultstore.Migrate(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
