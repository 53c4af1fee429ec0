package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huangsam/prioritize/internal/contract"
	"github.com/huangsam/prioritize/internal/resultdb"
	"github.com/huangsam/prioritize/schema"
)

// resultsSetup loads minimal configuration needed for result store operations.
// This is used by commands that need store access without full shared setup.
func resultsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.StoreBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	if backend == schema.NoneBackend || backend == "" {
		return fmt.Errorf("no result store configured; set --store-backend to sqlite, mysql or postgresql")
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// resultsSetupWrapper wraps resultsSetup to provide PreRunE for results commands.
func resultsSetupWrapper(_ *cobra.Command, _ []string) error {
	return resultsSetup()
}

// resultsCmd focused on result store management.
//
// Note: Results subcommands use minimal initialization (resultsSetup) instead of
// the full sharedSetup used by pipeline commands. This avoids input path
// validation and complex config processing for simple store operations.
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Manage stored weight and ranking results",
	Long: `Manage the result store that keeps computed weights and rankings across runs.

Every weights or evaluate run can persist its outcome to a database, so past
results stay queryable after the terminal output is gone.

Supported backends: SQLite, MySQL, PostgreSQL

Subcommands:
  status  - Show result store statistics and connection info
  clear   - Remove all stored results
  migrate - Apply or roll back result store schema migrations

Examples:
  # Check result store status
  prioritize results status --store-backend sqlite

  # Clear stored results
  prioritize results clear --store-backend sqlite`,
}

// resultsStatusCmd shows result store status.
var resultsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display result store statistics and connection details",
	Long: `Show detailed information about the result store.

Displays:
- Backend type
- Total number of recorded runs
- Timestamp of the latest run
- Stored weight and ranked-option row counts

Examples:
  # Check result store status
  prioritize results status --store-backend sqlite`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := resultdb.NewStore(cfg)
		if err != nil {
			contract.LogFatal("Failed to open result store", err)
		}
		defer func() { _ = store.Close() }()

		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get result store status", err)
		}
		resultdb.PrintStoreStatus(status)
	},
}

// resultsClearCmd clears the result store.
var resultsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored weights and rankings",
	Long: `Delete all recorded runs, weights and rankings from the configured backend.

Use this when:
- Input tables changed enough that old runs are no longer comparable
- Testing persistence without historic data
- Reclaiming space in the store database

Examples:
  # Clear SQLite store
  prioritize results clear --store-backend sqlite

  # Clear MySQL store (set connection string via env variable)
  PRIORITIZE_STORE_BACKEND=mysql PRIORITIZE_STORE_DB_CONNECT="..." prioritize results clear`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := resultdb.NewStore(cfg)
		if err != nil {
			contract.LogFatal("Failed to open result store", err)
		}
		defer func() { _ = store.Close() }()

		if err := store.Clear(); err != nil {
			contract.LogFatal("Failed to clear result store", err)
		}
		fmt.Println("Result store cleared successfully.")
	},
}

// resultsMigrateCmd applies schema migrations to the result store.
var resultsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back result store schema migrations",
	Long: `Bring the result store schema to a target version.

By default the store migrates to the latest version. Pass --target-version
to move to a specific version, or 0 to roll everything back.

Examples:
  # Migrate to the latest schema version
  prioritize results migrate --store-backend sqlite

  # Roll back to the initial state
  prioritize results migrate --store-backend sqlite --target-version 0`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := resultdb.Migrate(cfg, viper.GetInt("target-version")); err != nil {
			contract.LogFatal("Failed to migrate result store", err)
		}
	},
}
