package main

import (
	"context"
	"fmt"

	"countryviz/cmd/countryviz/ui"
	"countryviz/internal/country"
	"countryviz/internal/logging"
	"countryviz/internal/metric"
	"countryviz/internal/present"
	"countryviz/internal/view"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuiMetric string

// tuiCmd starts the interactive dashboard
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive dashboard (default)",
	Long: `Opens the full-screen dashboard: pick a metric with 1-6, filter with /,
page with the arrow keys and toggle between bubble and treemap charts with t.

Logs are written only when logging.file is configured.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiMetric, "metric", "m", "", "Metric to select on start")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	var initial metric.Kind
	if tuiMetric != "" {
		k, ok := metric.ParseKind(tuiMetric)
		if !ok {
			return fmt.Errorf("unknown metric %q (valid: %v)", tuiMetric, metric.Kinds())
		}
		initial = k
	}

	log := logging.Get(logging.CategoryUI)
	log.Info("starting dashboard", zap.String("source", cfg.Data.Source))

	opts := ui.Options{
		Source: cfg.Data.Source,
		Load: func(ctx context.Context) (country.Result, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			return loadDataset(ctx)
		},
		PageSize: view.ParsePageSize(cfg.View.PageSize),
		Chart:    present.SanitizeChartType(cfg.View.Chart),
		Debounce: cfg.GetSearchDebounce(),
		Styles:   ui.NewStyles(ui.ThemeFor(cfg.UI.Theme)),
		Logger:   log,
		Metric:   initial,
	}
	if err := ui.Run(opts); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
