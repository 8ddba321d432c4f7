package main

import (
	"fmt"

	"countryviz/internal/export"
	"countryviz/internal/logging"

	"github.com/spf13/cobra"
)

var (
	exportOut    string
	exportDriver string
)

// exportCmd writes every derived view to SQLite
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the dataset and every metric view to SQLite",
	Long: `Loads the dataset, derives all six metric views and writes them, with the
normalised records, as one run in a SQLite database. Each export appends a
new run; earlier runs are kept.

Drivers:
  - sqlite:  pure Go (modernc.org/sqlite), works without cgo
  - sqlite3: cgo (mattn/go-sqlite3)`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Database file (default from config)")
	exportCmd.Flags().StringVar(&exportDriver, "driver", "", "SQLite driver: sqlite or sqlite3 (default from config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	path := exportOut
	if path == "" {
		path = cfg.Export.Path
	}
	driver := exportDriver
	if driver == "" {
		driver = cfg.Export.Driver
	}

	res, err := loadDataset(ctx)
	if err != nil {
		return err
	}
	snap, err := export.Build(ctx, cfg.Data.Source, res)
	if err != nil {
		return fmt.Errorf("failed to build export: %w", err)
	}

	store, err := export.Open(driver, path, logging.Get(logging.CategoryExport))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Write(ctx, snap); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported run %s: %d countries, %d views to %s (%s)\n",
		snap.RunID, len(snap.Records), len(snap.Views), store.Path(), store.Driver())
	return nil
}
