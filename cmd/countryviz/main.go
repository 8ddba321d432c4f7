package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"countryviz/internal/config"
	"countryviz/internal/country"
	"countryviz/internal/logging"
	"countryviz/internal/metric"
	"countryviz/internal/view"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	dataSource string
	verbose    bool
	timeout    time.Duration

	// Resolved in PersistentPreRunE
	cfg     *config.Config
	logger  *zap.Logger
	session string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "countryviz",
	Short: "countryviz - explore country statistics as charts and rankings",
	Long: `countryviz loads a JSON dataset of countries, validates every record and
derives six metrics from it: population, borders, timezones and languages per
country, and countries and timezones per region.

Run without arguments to start the interactive dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if dataSource != "" {
			c.Data.Source = dataSource
		}
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c

		// The dashboard owns the terminal; its logs go to the configured file only.
		interactive := !cmd.HasParent() || cmd.Name() == "tui"

		session = uuid.NewString()
		logger, err = logging.Initialize(cfg.Logging, logging.Options{
			Verbose: verbose,
			Session: session,
			Stderr:  !interactive,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.Get(logging.CategoryBoot).Debug("configuration loaded",
			zap.String("command", cmd.Name()),
			zap.String("config", configPath),
			zap.String("source", cfg.Data.Source))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.Close()
	},
	RunE: runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().StringVar(&dataSource, "data", "", "Dataset file path or http(s) URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Dataset load timeout")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commandContext returns a context bounded by --timeout and cancelled on
// SIGINT or SIGTERM.
func commandContext() (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

// loadDataset fetches and validates the configured dataset.
func loadDataset(ctx context.Context) (country.Result, error) {
	loader := country.NewLoader(logging.Get(logging.CategoryLoad), cfg.Data.MaxReportedErrors)
	return loader.Load(ctx, cfg.Data.Source)
}

// =============================================================================
// VIEW FLAGS
// =============================================================================

// viewFlags are shared by the commands that print or render one page.
type viewFlags struct {
	metric   string
	search   string
	pageSize string
	page     int
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.metric, "metric", "m", "", "Metric: population, borders, timezones, languages, region-countries, region-timezones (default from config)")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "Case-insensitive name or region filter")
	cmd.Flags().StringVar(&f.pageSize, "page-size", "", "Rows per page: 25, 50, 100, 200 or all (default from config)")
	cmd.Flags().IntVarP(&f.page, "page", "p", 1, "Page number")
}

// kind resolves --metric, falling back to the configured metric.
func (f *viewFlags) kind() (metric.Kind, error) {
	name := f.metric
	if name == "" {
		return metric.SanitizeKind(cfg.View.Metric), nil
	}
	k, ok := metric.ParseKind(name)
	if !ok {
		return "", fmt.Errorf("unknown metric %q (valid: %v)", name, metric.Kinds())
	}
	return k, nil
}

// apply drives a controller through the same transitions as the dashboard:
// select the metric, set the page size, filter, then jump to the page.
func (f *viewFlags) apply(records []country.Record) (view.State, error) {
	k, err := f.kind()
	if err != nil {
		return view.State{}, err
	}
	size := f.pageSize
	if size == "" {
		size = cfg.View.PageSize
	}

	ctrl := view.NewController(records, view.WithLogger(logging.Get(logging.CategoryView)))
	ctrl.SelectMetric(k)
	ctrl.SetPageSize(view.ParsePageSize(size))
	if f.search != "" {
		ctrl.SetSearchTerm(f.search)
	}
	if f.page != 1 {
		if t := ctrl.GoToPage(f.page); !t.Accepted() {
			return view.State{}, fmt.Errorf("page %d out of range (1-%d)", f.page, max(t.State.TotalPages(), 1))
		}
	}
	return ctrl.State(), nil
}
