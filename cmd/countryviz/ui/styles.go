// Package ui provides the terminal dashboard for countryviz: styling, the
// chart and table panels, and the bubbletea model that drives them.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the dashboard palette. Brand marks titles and the active menu
// entry; Alert marks the no-results banner.
type Theme struct {
	Name  string
	Text  lipgloss.Color
	Brand lipgloss.Color
	Alert lipgloss.Color
	Dim   lipgloss.Color
	Rule  lipgloss.Color
	Dark  bool
}

var themes = map[string]Theme{
	"light": {
		Name:  "light",
		Text:  "#2c3e50",
		Brand: "#3498db",
		Alert: "#e74c3c",
		Dim:   "#7f8c8d",
		Rule:  "#dce0e5",
	},
	"dark": {
		Name:  "dark",
		Text:  "#f2f2f2",
		Brand: "#5dade2",
		Alert: "#f1948a",
		Dim:   "#95a5a6",
		Rule:  "#2a3850",
		Dark:  true,
	},
}

// errorColor is shared by both themes.
const errorColor = lipgloss.Color("#e53935")

// ChartPalette is the fill order for bars and treemap blocks, cycled by
// position on the page.
var ChartPalette = []lipgloss.Color{"#e57373", "#4db6ac", "#5c6bc0", "#ffd54f", "#ff8a65"}

// LightTheme is the default palette.
func LightTheme() Theme { return themes["light"] }

// DarkTheme is the palette for dark terminals.
func DarkTheme() Theme { return themes["dark"] }

// ThemeFor resolves a configured theme name. "auto" and unknown names
// detect the terminal background.
func ThemeFor(name string) Theme {
	if t, ok := themes[strings.ToLower(name)]; ok {
		return t
	}
	return DetectTheme()
}

// DetectTheme reads COLORFGBG ("fg;bg"). Background indexes 0-6 and 8 are
// dark; anything else, including an unset variable, is light.
func DetectTheme() Theme {
	_, bg, ok := strings.Cut(os.Getenv("COLORFGBG"), ";")
	if !ok {
		return LightTheme()
	}
	idx, err := strconv.Atoi(bg)
	if err == nil && (idx >= 0 && idx <= 6 || idx == 8) {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds every style the dashboard renders with.
type Styles struct {
	Theme Theme

	Header lipgloss.Style
	Footer lipgloss.Style
	Panel  lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Error    lipgloss.Style
	Spinner  lipgloss.Style

	MenuItem     lipgloss.Style
	MenuActive   lipgloss.Style
	PageActive   lipgloss.Style
	PageDisabled lipgloss.Style
	StatValue    lipgloss.Style
	StatLabel    lipgloss.Style
	Banner       lipgloss.Style
	BannerEmpty  lipgloss.Style
}

// NewStyles derives the style set from a theme.
func NewStyles(t Theme) Styles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	inverse := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(t.Brand)

	return Styles{
		Theme: t,

		Header: inverse.Bold(true).Padding(0, 2),
		Footer: fg(t.Dim).Padding(0, 2),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Rule).
			Padding(0, 1),

		Title:    fg(t.Brand).Bold(true),
		Subtitle: fg(t.Dim).Italic(true),
		Body:     fg(t.Text),
		Muted:    fg(t.Dim),
		Bold:     fg(t.Text).Bold(true),
		Error:    fg(errorColor).Bold(true),
		Spinner:  fg(t.Brand),

		MenuItem:     fg(t.Dim).Padding(0, 1),
		MenuActive:   inverse.Bold(true).Padding(0, 1),
		PageActive:   fg(t.Brand).Bold(true).Underline(true),
		PageDisabled: fg(t.Rule),
		StatValue:    fg(t.Brand).Bold(true),
		StatLabel:    fg(t.Dim),
		Banner:       fg(t.Brand).Bold(true),
		BannerEmpty:  fg(t.Alert).Bold(true),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}
