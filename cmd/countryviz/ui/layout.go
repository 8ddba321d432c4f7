// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants for panel sizing
const (
	HeaderHeight   = 1
	MenuHeight     = 1
	SearchHeight   = 1
	BannerHeight   = 2
	StatsHeight    = 2
	PagerHeight    = 2
	FooterHeight   = 1
	PanelBorder    = 2
	PanelPaddingH  = 1
	ColumnGap      = 1
	MinChartHeight = 5

	// Responsive breakpoints
	MinimumTerminalWidth  = 80
	MinimumTerminalHeight = 24
	CompactModeWidth      = 100
	SideBySideWidth       = 140

	// Chart dimensions
	ChartLabelWidth = 20
	MinBarWidth     = 1
	DetailPaneWidth = 40
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	IsCompact      bool
	SideBySide     bool
}

// NewLayoutConfig creates a layout configuration for the given terminal size
func NewLayoutConfig(width, height int) LayoutConfig {
	return LayoutConfig{
		TerminalWidth:  max(width, MinimumTerminalWidth),
		TerminalHeight: max(height, MinimumTerminalHeight),
		IsCompact:      width < CompactModeWidth,
		SideBySide:     width >= SideBySideWidth,
	}
}

// ContentWidth returns the usable width inside the outer frame.
func (l LayoutConfig) ContentWidth() int {
	return l.TerminalWidth - 2*PanelPaddingH
}

// PanelWidth is the inner width of the chart or table panel. Wide
// terminals place them side by side.
func (l LayoutConfig) PanelWidth() int {
	w := l.ContentWidth()
	if l.SideBySide {
		w = (w - ColumnGap) / 2
	}
	return w - PanelBorder - 2*PanelPaddingH
}

// BodyHeight is the rows left for chart and table after the fixed chrome.
func (l LayoutConfig) BodyHeight() int {
	fixed := HeaderHeight + MenuHeight + SearchHeight + BannerHeight + StatsHeight + PagerHeight + FooterHeight
	return max(l.TerminalHeight-fixed, MinChartHeight*2)
}

// PanelHeight is the inner height of one panel.
func (l LayoutConfig) PanelHeight() int {
	h := l.BodyHeight()
	if !l.SideBySide {
		h /= 2
	}
	return max(h-PanelBorder, MinChartHeight)
}
