package main

import (
	"fmt"

	"countryviz/internal/country"

	"github.com/spf13/cobra"
)

var validateMaxErrors int

// validateCmd loads the dataset and reports what survived validation
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate the dataset",
	Long: `Fetches the dataset, normalises every record and prints how many records
are valid, how many were skipped, and the first validation errors.

Records without a name, or that are not JSON objects, are skipped; every
other field falls back to a default.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().IntVar(&validateMaxErrors, "max-errors", 0, "Errors to print (default from config)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	res, err := loadDataset(ctx)
	if err != nil {
		return err
	}

	limit := validateMaxErrors
	if limit <= 0 {
		limit = cfg.Data.MaxReportedErrors
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Source:  %s\n", cfg.Data.Source)
	fmt.Fprintf(out, "Valid:   %d\n", len(res.Data))
	fmt.Fprintf(out, "Skipped: %d\n", res.Skipped)

	shown, hidden := country.Truncate(res.Errors, limit)
	if len(shown) > 0 {
		fmt.Fprintln(out, "\nValidation errors:")
		for _, msg := range shown {
			fmt.Fprintf(out, "  - %s\n", msg)
		}
		if hidden > 0 {
			fmt.Fprintf(out, "  ... and %d more\n", hidden)
		}
	}
	return nil
}
