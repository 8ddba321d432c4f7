package ui

import (
	"math"
	"strings"

	"countryviz/internal/metric"
	"countryviz/internal/present"
	"countryviz/internal/view"

	"github.com/charmbracelet/lipgloss"
)

// ChartView draws the current page as a bubble strip or a treemap inside a
// width x height box. Empty pages show the matching empty-state lines.
func ChartView(s view.State, chart present.ChartType, styles Styles, width, height int) string {
	labels := present.LabelsFor(s.Metric)
	header := styles.Title.Render(labels.ChartTitle) + "  " + styles.Subtitle.Render(labels.AxisLabel)
	body := height - 1

	if msg := present.EmptyMessage(s, true); msg != nil {
		return header + "\n" + emptyView(msg, s.Presence() == view.NoResults, styles, width, body)
	}

	switch chart {
	case present.ChartTreemap:
		return header + "\n" + TreemapView(s.Current, styles, width, body)
	default:
		return header + "\n" + BubbleView(s.Current, styles, width, body)
	}
}

func emptyView(lines []string, warn bool, styles Styles, width, height int) string {
	style := styles.Muted
	if warn {
		style = styles.BannerEmpty
	}
	rendered := make([]string, len(lines))
	for i, l := range lines {
		rendered[i] = style.Render(l)
	}
	return lipgloss.Place(width, max(height, len(lines)), lipgloss.Center, lipgloss.Center,
		strings.Join(rendered, "\n"))
}

// BubbleView draws one row per item: the label shortened for its bubble
// radius and a bar whose length follows the square-root radius scale.
func BubbleView(items []metric.Item, styles Styles, width, height int) string {
	scale := present.NewRadiusScale(items)
	valueWidth := 0
	for _, it := range items {
		valueWidth = max(valueWidth, lipgloss.Width(present.FormatValue(it.Value)))
	}
	barSpace := max(width-ChartLabelWidth-valueWidth-2, MinBarWidth)

	shown := items
	if height > 0 && len(shown) > height {
		shown = shown[:height-1]
	}

	var sb strings.Builder
	for i, it := range shown {
		r := scale.Radius(it.Value)
		label := present.BubbleLabel(it.Label, r)
		n := max(int(math.Round(r/present.MaxRadius*float64(barSpace))), MinBarWidth)
		bar := lipgloss.NewStyle().Foreground(ChartPalette[i%len(ChartPalette)]).Render(strings.Repeat("█", n))

		sb.WriteString(styles.Body.Width(ChartLabelWidth).Render(fit(label, ChartLabelWidth-1)))
		sb.WriteString(bar)
		sb.WriteString(" ")
		sb.WriteString(styles.Muted.Render(present.FormatValue(it.Value)))
		sb.WriteString("\n")
	}
	if hidden := len(items) - len(shown); hidden > 0 {
		sb.WriteString(styles.Muted.Render("… " + present.FormatCount(hidden) + " more"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// treemapBlock is one packed block of the terminal treemap.
type treemapBlock struct {
	item  metric.Item
	width int
	color lipgloss.Color
}

// TreemapView packs items into rows of two-line blocks whose widths are
// proportional to each item's share of the page total. Each block shows the
// label and the SI-formatted value.
func TreemapView(items []metric.Item, styles Styles, width, height int) string {
	if width <= 0 {
		return ""
	}
	maxRows := max(height/2, 1)
	budget := float64(width * maxRows)
	total := present.PageTotal(items)

	var rows [][]treemapBlock
	var cur []treemapBlock
	used := 0
	placed := 0
	for i, it := range items {
		w := int(math.Round(present.Share(it.Value, total) * budget))
		w = min(max(w, 1), width)
		if used+w > width && len(cur) > 0 {
			rows = append(rows, cur)
			cur, used = nil, 0
			if len(rows) == maxRows {
				break
			}
		}
		cur = append(cur, treemapBlock{item: it, width: w, color: ChartPalette[i%len(ChartPalette)]})
		used += w
		placed++
	}
	if len(cur) > 0 {
		rows = append(rows, cur)
	}

	var sb strings.Builder
	for _, row := range rows {
		var top, bottom strings.Builder
		for _, b := range row {
			style := lipgloss.NewStyle().
				Background(b.color).
				Foreground(lipgloss.Color("#ffffff")).
				Width(b.width)
			top.WriteString(style.Bold(true).Render(fit(b.item.Label, b.width)))
			bottom.WriteString(style.Render(fit(present.FormatSI(b.item.Value), b.width)))
		}
		sb.WriteString(top.String() + "\n" + bottom.String() + "\n")
	}
	if hidden := len(items) - placed; hidden > 0 {
		sb.WriteString(styles.Muted.Render("… " + present.FormatCount(hidden) + " more"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// fit cuts s to at most w cells, marking the cut with an ellipsis.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w == 1 {
		return "…"
	}
	return string(r[:w-1]) + "…"
}
