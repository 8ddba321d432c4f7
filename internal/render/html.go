// Package render draws the current view as a standalone HTML chart page.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"countryviz/internal/present"
	"countryviz/internal/view"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"
)

const (
	PageTitle     = "Country Data Visualization"
	DefaultWidth  = "1200px"
	DefaultHeight = "720px"
)

// Options control the HTML output.
type Options struct {
	Chart  present.ChartType
	Width  string
	Height string
	Logger *zap.Logger
}

func (o Options) withDefaults() Options {
	o.Chart = present.SanitizeChartType(string(o.Chart))
	if o.Width == "" {
		o.Width = DefaultWidth
	}
	if o.Height == "" {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Write renders the current page of s to w.
func Write(w io.Writer, s view.State, o Options) error {
	o = o.withDefaults()
	page := components.NewPage()
	page.PageTitle = PageTitle

	switch o.Chart {
	case present.ChartTreemap:
		page.AddCharts(Treemap(s, o))
	default:
		page.AddCharts(Bubble(s, o))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render %s page: %w", o.Chart, err)
	}
	o.Logger.Debug("chart page written",
		zap.String("chart", string(o.Chart)),
		zap.String("metric", string(s.Metric)),
		zap.Int("items", len(s.Current)))
	return nil
}

// subtitle carries the pager summary, the search banner or the empty state.
func subtitle(s view.State) string {
	if msg := present.EmptyMessage(s, true); msg != nil {
		return strings.Join(msg, " ")
	}
	parts := []string{present.PagerSummary(s)}
	if b := present.SearchBanner(s); b.Visible {
		parts = append(parts, b.Title+" "+b.Detail)
	}
	return strings.Join(parts, " | ")
}

func globalOptions(s view.State, o Options) []charts.GlobalOpts {
	labels := present.LabelsFor(s.Metric)
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: PageTitle,
			Width:     o.Width,
			Height:    o.Height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    labels.ChartTitle,
			Subtitle: subtitle(s),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: "{b}: {c}",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	}
}

// Bubble draws one node per item, sized by the square-root radius scale and
// laid out by a force simulation.
func Bubble(s view.State, o Options) *charts.Graph {
	scale := present.NewRadiusScale(s.Current)
	nodes := make([]opts.GraphNode, 0, len(s.Current))
	for _, it := range s.Current {
		r := scale.Radius(it.Value)
		nodes = append(nodes, opts.GraphNode{
			Name:       it.Label,
			Value:      float32(it.Value),
			SymbolSize: math.Round(2 * r),
		})
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(globalOptions(s, o)...)
	graph.AddSeries(present.LabelsFor(s.Metric).ValueLabel, nodes, nil,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout: "force",
			Roam:   opts.Bool(true),
			Force: &opts.GraphForce{
				Repulsion: 120,
				Gravity:   0.08,
			},
		}),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "inside",
		}),
	)
	return graph
}

// Treemap draws one block per item with its SI-formatted value in the label.
func Treemap(s view.State, o Options) *charts.TreeMap {
	nodes := make([]opts.TreeMapNode, 0, len(s.Current))
	for _, it := range s.Current {
		nodes = append(nodes, opts.TreeMapNode{
			Name:  TreemapLabel(it.Label, it.Value),
			Value: int(math.Round(it.Value)),
		})
	}

	tm := charts.NewTreeMap()
	tm.SetGlobalOptions(globalOptions(s, o)...)
	tm.AddSeries(present.LabelsFor(s.Metric).ValueLabel, nodes)
	return tm
}

// TreemapLabel is the block caption: the name and its short value.
func TreemapLabel(label string, value float64) string {
	return label + "\n" + present.FormatSI(value)
}
