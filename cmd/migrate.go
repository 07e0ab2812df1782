package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thechaitanyaanand/preseguide-api/internal/database"
	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"github.com/thechaitanyaanand/preseguide-api/pkg/config"
)

// migratedModels lists every model the schema knows about, in
// creation order.
var migratedModels = []any{
	&models.Presentation{},
	&models.Recording{},
	&models.Badge{},
	&models.Job{},
}

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage database migrations for the PreseGuide API.

This command provides subcommands to apply, rollback, and check the status
of the database schema.

Available subcommands:
  up      - Apply the current schema
  down    - Drop all application tables
  status  - Show which tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the current schema",
	Long: `Apply the current database schema.

Creates any missing tables, columns, and indexes for presentations,
recordings, badges, and jobs. Existing data is preserved.`,
	RunE: runMigrateUp,
}

// migrateDownCmd drops the application tables
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Drop all application tables",
	Long: `Drop every application table from the database.

This removes all presentations, recordings, badges, and jobs.
The data cannot be recovered afterwards.`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows the schema status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long:  `Display which application tables currently exist in the database.`,
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateDownCmd.Flags().Bool("force", false, "skip the confirmation prompt")
}

func openDatabase() (*database.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AutoMigrate(migratedModels...); err != nil {
		return err
	}

	fmt.Println("Schema is up to date")
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	if !force {
		fmt.Print("WARNING: This will drop all application tables. Continue? (y/N): ")
		var response string
		_, _ = fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Rollback cancelled")
			return nil
		}
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	// Drop in reverse creation order
	for i := len(migratedModels) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(migratedModels[i]); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}

	fmt.Println("All application tables dropped")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println("Database Migration Status")
	fmt.Println(strings.Repeat("=", 50))

	missing := 0
	for _, model := range migratedModels {
		name := fmt.Sprintf("%T", model)
		name = strings.TrimPrefix(name, "*models.")
		if db.Migrator().HasTable(model) {
			fmt.Printf("  [ok]      %s\n", name)
		} else {
			fmt.Printf("  [missing] %s\n", name)
			missing++
		}
	}

	if missing > 0 {
		fmt.Printf("\n%d table(s) missing, run 'preseguide-api migrate up'\n", missing)
	} else {
		fmt.Println("\nAll tables present")
	}
	return nil
}
