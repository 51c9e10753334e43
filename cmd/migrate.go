package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardiolab/ecg-annotator-api/internal/database"
	"github.com/cardiolab/ecg-annotator-api/internal/models"
	"github.com/cardiolab/ecg-annotator-api/pkg/config"
)

// migrateCmd applies the GORM schema to the configured database
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long: `Apply the GORM auto-migration for all models to the configured database.

With the default in-memory database this is only useful as a schema check;
point database.path at a file to create a persistent store.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().Bool("dry-run", false, "list the models without touching the database")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	all := models.All()
	if dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "Would migrate %d models:\n", len(all))
		for _, m := range all {
			fmt.Fprintf(cmd.OutOrStdout(), "  %T\n", m)
		}
		return nil
	}

	dbPath := config.GetString("database.path")
	db, err := database.Initialize(dbPath, config.GetBool("database.verbose"))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migrated %d models in %s\n", len(all), dbPath)
	return nil
}
