package present

import (
	"math"

	"countryviz/internal/metric"
)

// ChartType selects how the current page is drawn. It is a renderer setting
// and never part of the view state.
type ChartType string

const (
	ChartBubble  ChartType = "bubble"
	ChartTreemap ChartType = "treemap"
)

// ChartTypes lists the supported chart types in toggle order.
func ChartTypes() []ChartType { return []ChartType{ChartBubble, ChartTreemap} }

// SanitizeChartType returns the chart type named s, or ChartBubble.
func SanitizeChartType(s string) ChartType {
	switch ChartType(s) {
	case ChartBubble, ChartTreemap:
		return ChartType(s)
	}
	return ChartBubble
}

// Next returns the other chart type.
func (c ChartType) Next() ChartType {
	if c == ChartTreemap {
		return ChartBubble
	}
	return ChartTreemap
}

const (
	// MinRadius and MaxRadius bound the bubble radius scale.
	MinRadius = 12.0
	MaxRadius = 60.0
)

// RadiusScale maps values to bubble radii with a square-root scale over
// [0, max].
type RadiusScale struct {
	max float64
}

// NewRadiusScale builds a scale whose domain ends at the largest value in
// items. A non-positive or non-finite maximum becomes 1.
func NewRadiusScale(items []metric.Item) RadiusScale {
	m := 0.0
	for _, it := range items {
		if it.Value > m {
			m = it.Value
		}
	}
	return RadiusScale{max: safeMax(m)}
}

func safeMax(m float64) float64 {
	if m <= 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return 1
	}
	return m
}

// Max is the upper end of the domain.
func (s RadiusScale) Max() float64 { return safeMax(s.max) }

// Radius returns the radius for v.
func (s RadiusScale) Radius(v float64) float64 {
	if v <= 0 || math.IsNaN(v) {
		return MinRadius
	}
	return MinRadius + (MaxRadius-MinRadius)*math.Sqrt(v)/math.Sqrt(s.Max())
}

// BubbleLabel shortens name to fit a bubble of radius r.
func BubbleLabel(name string, r float64) string {
	switch {
	case r < 25:
		return truncate(name, 8, 6)
	case r < 40:
		return truncate(name, 12, 10)
	case r < 50:
		return truncate(name, 15, 13)
	default:
		return truncate(name, 18, 16)
	}
}

// truncate cuts s to keep runes plus "..." when it is longer than limit.
func truncate(s string, limit, keep int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:keep]) + "..."
}

// Share is one item's fraction of the page total, used to size treemap
// blocks. It is 0 when the total is 0.
func Share(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total
}
