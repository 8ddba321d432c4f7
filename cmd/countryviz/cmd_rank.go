package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"countryviz/cmd/countryviz/ui"
	"countryviz/internal/logging"
	"countryviz/internal/present"
	"countryviz/internal/view"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	rankView   viewFlags
	rankFormat string
	rankRaw    bool
)

// rankCmd prints one page of a metric ranking
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Print one page of a metric ranking",
	Long: `Loads the dataset, derives the selected metric and prints the requested page
with its summary statistics.

Examples:
  countryviz rank --metric population --page-size 25
  countryviz rank -m languages --search europe --format markdown
  countryviz rank -m region-timezones --format json`,
	Args: cobra.NoArgs,
	RunE: runRank,
}

func init() {
	rankView.register(rankCmd)
	rankCmd.Flags().StringVarP(&rankFormat, "format", "f", "table", "Output format: table, json, yaml, markdown")
	rankCmd.Flags().BoolVar(&rankRaw, "raw", false, "Print markdown without terminal rendering")
}

// rankRow is one ranked item in structured output.
type rankRow struct {
	Rank       int     `json:"rank" yaml:"rank"`
	Label      string  `json:"label" yaml:"label"`
	Value      float64 `json:"value" yaml:"value"`
	Percentage string  `json:"percentage" yaml:"percentage"`
}

type rankStat struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// rankReport is the structured form of one page.
type rankReport struct {
	Metric     string     `json:"metric" yaml:"metric"`
	Title      string     `json:"title" yaml:"title"`
	Search     string     `json:"search,omitempty" yaml:"search,omitempty"`
	PageSize   string     `json:"page_size" yaml:"page_size"`
	Page       int        `json:"page" yaml:"page"`
	TotalPages int        `json:"total_pages" yaml:"total_pages"`
	Filtered   int        `json:"filtered" yaml:"filtered"`
	Total      int        `json:"total" yaml:"total"`
	Rows       []rankRow  `json:"rows" yaml:"rows"`
	Stats      []rankStat `json:"stats,omitempty" yaml:"stats,omitempty"`
	Summary    string     `json:"summary" yaml:"summary"`
}

func newRankReport(s view.State) rankReport {
	r := rankReport{
		Metric:     string(s.Metric),
		Title:      present.LabelsFor(s.Metric).ChartTitle,
		Search:     s.SearchTerm,
		PageSize:   s.PageSize.String(),
		Page:       s.Page,
		TotalPages: s.TotalPages(),
		Filtered:   s.FilteredCount(),
		Total:      s.TotalCount(),
		Rows:       []rankRow{},
		Summary:    present.PagerSummary(s),
	}
	for _, row := range present.Rows(s) {
		r.Rows = append(r.Rows, rankRow{
			Rank:       row.Rank,
			Label:      row.Label,
			Value:      row.Item.Value,
			Percentage: row.Percentage,
		})
	}
	for _, st := range present.Stats(s) {
		r.Stats = append(r.Stats, rankStat{Label: st.Label, Value: st.Value})
	}
	return r
}

func runRank(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	res, err := loadDataset(ctx)
	if err != nil {
		return err
	}
	s, err := rankView.apply(res.Data)
	if err != nil {
		return err
	}

	logging.Get(logging.CategoryView).Debug("rank computed",
		zap.String("metric", string(s.Metric)),
		zap.Int("page", s.Page),
		zap.Int("rows", len(s.Current)))

	return writeRank(cmd.OutOrStdout(), s, rankFormat, rankRaw)
}

func writeRank(w io.Writer, s view.State, format string, raw bool) error {
	switch strings.ToLower(format) {
	case "table", "":
		return writeRankTable(w, s)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newRankReport(s))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newRankReport(s)); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case "markdown", "md":
		md := present.Markdown(s)
		if raw {
			_, err := io.WriteString(w, md)
			return err
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		out, err := renderer.Render(md)
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		return fmt.Errorf("unknown format %q (valid: table, json, yaml, markdown)", format)
	}
}

func writeRankTable(w io.Writer, s view.State) error {
	styles := ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))
	labels := present.LabelsFor(s.Metric)

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(labels.ChartTitle) + "\n")
	if b := present.SearchBanner(s); b.Visible {
		sb.WriteString(b.Title + " (" + b.Detail + ")\n")
	}
	sb.WriteString("\n")

	if msg := present.EmptyMessage(s, true); msg != nil {
		sb.WriteString(strings.Join(msg, "\n") + "\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}

	sb.WriteString(ui.RankingTable("", present.Rows(s)).View(styles, 0))
	sb.WriteString("\n")
	for _, st := range present.Stats(s) {
		fmt.Fprintf(&sb, "  %-22s %s\n", st.Label+":", st.Value)
	}
	sb.WriteString("\n" + present.PagerSummary(s) + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
