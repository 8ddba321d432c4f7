package ui

import (
	"strings"
	"testing"

	"countryviz/internal/metric"
	"countryviz/internal/present"
	"countryviz/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleTable_View(t *testing.T) {
	tbl := NewSimpleTable("Top", []string{"Rank", "Name"})
	tbl.AddRow("1", "Chile")
	tbl.AddRow("2", "Peru")

	out := tbl.View(NewStyles(LightTheme()), 0)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "Top")
	assert.Contains(t, lines[1], "Rank")
	assert.Contains(t, lines[1], "|")
	assert.True(t, strings.HasPrefix(lines[2], "---"))
	assert.Contains(t, lines[3], "Chile")
	assert.Contains(t, lines[4], "Peru")
}

func TestSimpleTable_EmptyAndClipped(t *testing.T) {
	styles := NewStyles(LightTheme())
	assert.Empty(t, NewSimpleTable("", []string{"A"}).View(styles, 0))

	tbl := NewSimpleTable("", []string{"A"})
	for range 5 {
		tbl.AddRow("x")
	}
	out := tbl.View(styles, 2)
	assert.Contains(t, out, "… 3 more rows")
}

func TestRankingTable(t *testing.T) {
	c := view.NewController(testRecords(), view.WithPageSize(view.Size(5)))
	c.SelectMetric(metric.Population)
	c.NextPage()

	tbl := RankingTable("", present.Rows(c.State()))
	assert.Equal(t, present.TableHeaders, tbl.Headers)
	require.Len(t, tbl.Rows, 5)
	assert.Equal(t, "6", tbl.Rows[0][0], "ranks continue across pages")
	assert.Equal(t, "Country 05", tbl.Rows[0][1])
	assert.True(t, tbl.Right[2])
	assert.False(t, tbl.Right[1])
}

func TestLayoutConfig(t *testing.T) {
	small := NewLayoutConfig(40, 10)
	assert.Equal(t, MinimumTerminalWidth, small.TerminalWidth)
	assert.Equal(t, MinimumTerminalHeight, small.TerminalHeight)
	assert.True(t, small.IsCompact)

	wide := NewLayoutConfig(160, 50)
	assert.True(t, wide.SideBySide)
	assert.Less(t, wide.PanelWidth(), NewLayoutConfig(120, 50).PanelWidth())
	assert.GreaterOrEqual(t, wide.PanelHeight(), MinChartHeight)
}

func TestThemeFor(t *testing.T) {
	assert.True(t, ThemeFor("dark").Dark)
	assert.False(t, ThemeFor("LIGHT").Dark)

	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, ThemeFor("auto").Dark)
	t.Setenv("COLORFGBG", "0;15")
	assert.False(t, ThemeFor("auto").Dark)
}
