package ui

import (
	"fmt"
	"strings"
	"testing"

	"countryviz/internal/metric"
	"countryviz/internal/present"
	"countryviz/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populationItems(t *testing.T) []metric.Item {
	t.Helper()
	items := metric.Derive(testRecords(), metric.Population)
	require.Len(t, items, 12)
	return items
}

func TestBubbleView(t *testing.T) {
	items := populationItems(t)[:3]
	out := BubbleView(items, NewStyles(LightTheme()), 80, 10)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Country 00")
	assert.Contains(t, lines[0], "12,000,000")

	// sqrt scale: the largest item has the longest bar
	assert.Greater(t, strings.Count(lines[0], "█"), strings.Count(lines[2], "█"))
}

func TestBubbleView_ClipsToHeight(t *testing.T) {
	out := BubbleView(populationItems(t), NewStyles(LightTheme()), 80, 5)
	assert.Contains(t, out, "… 8 more")
	assert.NotContains(t, out, "Country 11")
}

func TestTreemapView(t *testing.T) {
	items := populationItems(t)[:4]
	out := TreemapView(items, NewStyles(LightTheme()), 60, 10)

	assert.Contains(t, out, "12M")
	assert.Contains(t, out, "Country 00")
	assert.NotContains(t, out, "more")
	assert.Empty(t, TreemapView(items, NewStyles(LightTheme()), 0, 10))
}

func TestTreemapView_OverflowCountsHidden(t *testing.T) {
	// one row of two lines: the dominant block rounds to the full width and
	// each tiny block needs at least one cell, so none of them fit
	items := []metric.Item{{Label: "Big", Value: 100, Kind: metric.ItemCountry}}
	for i := range 5 {
		items = append(items, metric.Item{Label: fmt.Sprintf("Tiny %d", i), Value: 1, Kind: metric.ItemCountry})
	}

	out := TreemapView(items, NewStyles(LightTheme()), 10, 2)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Big")
	assert.Contains(t, lines[1], "100")
	assert.Contains(t, lines[2], "… 5 more")
	assert.NotContains(t, out, "Tiny")
}

func TestChartView_EmptyStates(t *testing.T) {
	styles := NewStyles(LightTheme())

	empty := view.NewController(nil)
	empty.SelectMetric(metric.Population)
	out := ChartView(empty.State(), present.ChartBubble, styles, 80, 10)
	assert.Contains(t, out, "Country Population Distribution")
	assert.Contains(t, out, present.NoDataMessage)

	c := view.NewController(testRecords())
	c.SelectMetric(metric.Population)
	c.SetSearchTerm("nowhere")
	out = ChartView(c.State(), present.ChartTreemap, styles, 80, 10)
	assert.Contains(t, out, present.NoMatchMessage)
	assert.Contains(t, out, present.NoMatchHint)
}

func TestFit(t *testing.T) {
	assert.Equal(t, "Chile", fit("Chile", 5))
	assert.Equal(t, "Chi…", fit("Chile", 4))
	assert.Equal(t, "…", fit("Chile", 1))
	assert.Equal(t, "", fit("Chile", 0))
	assert.Equal(t, "Côt…", fit("Côte d'Ivoire", 4))
}
