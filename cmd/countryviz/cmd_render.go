package main

import (
	"fmt"
	"os"

	"countryviz/internal/logging"
	"countryviz/internal/present"
	"countryviz/internal/render"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	renderView   viewFlags
	renderChart  string
	renderOut    string
	renderWidth  string
	renderHeight string
)

// renderCmd writes an interactive HTML chart of one page
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write one page as an HTML bubble or treemap chart",
	Long: `Writes a self-contained HTML page with an interactive chart of the selected
page. Bubble charts use a force layout with square-root radius scaling;
treemaps size each block by value.

Example:
  countryviz render -m population --chart treemap --out population.html`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderView.register(renderCmd)
	renderCmd.Flags().StringVar(&renderChart, "chart", "", "Chart type: bubble or treemap (default from config)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "countryviz.html", "Output file")
	renderCmd.Flags().StringVar(&renderWidth, "width", render.DefaultWidth, "Chart width (CSS)")
	renderCmd.Flags().StringVar(&renderHeight, "height", render.DefaultHeight, "Chart height (CSS)")
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	res, err := loadDataset(ctx)
	if err != nil {
		return err
	}
	s, err := renderView.apply(res.Data)
	if err != nil {
		return err
	}

	chart := renderChart
	if chart == "" {
		chart = cfg.View.Chart
	}

	f, err := os.Create(renderOut)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	log := logging.Get(logging.CategoryRender)
	opts := render.Options{
		Chart:  present.SanitizeChartType(chart),
		Width:  renderWidth,
		Height: renderHeight,
		Logger: log,
	}
	if err := render.Write(f, s, opts); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	log.Info("chart written", zap.String("path", renderOut), zap.String("chart", string(opts.Chart)))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s chart of %s to %s (%s)\n",
		opts.Chart, s.Metric, renderOut, present.PagerSummary(s))
	return nil
}
