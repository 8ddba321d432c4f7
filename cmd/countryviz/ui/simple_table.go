package ui

import (
	"strings"

	"countryviz/internal/present"

	"github.com/charmbracelet/lipgloss"
)

// SimpleTable renders a static ranking table. Columns listed in Right are
// right aligned; Selected highlights one row, or none when negative.
type SimpleTable struct {
	Title    string
	Headers  []string
	Rows     [][]string
	Right    map[int]bool
	Selected int
}

// NewSimpleTable creates a new SimpleTable with the given title and headers.
func NewSimpleTable(title string, headers []string) *SimpleTable {
	return &SimpleTable{
		Title:    title,
		Headers:  headers,
		Rows:     make([][]string, 0),
		Right:    map[int]bool{},
		Selected: -1,
	}
}

// RankingTable builds the table for the current page: rank, label,
// value and percentage, with the numeric columns right aligned.
func RankingTable(title string, rows []present.Row) *SimpleTable {
	t := NewSimpleTable(title, present.TableHeaders)
	t.Right = map[int]bool{0: true, 2: true, 3: true}
	for _, r := range rows {
		t.AddRow(r.Cells()...)
	}
	return t
}

// AddRow adds a row to the table.
func (t *SimpleTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// View renders the table using the provided styles, clipping to maxRows
// data rows when maxRows is positive.
func (t *SimpleTable) View(styles Styles, maxRows int) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				colWidths[i] = max(colWidths[i], lipgloss.Width(cell))
			}
		}
	}
	// lipgloss Width includes padding
	for i := range colWidths {
		colWidths[i] += 2
	}

	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)
	selStyle := rowStyle.Reverse(true)
	sepStyle := styles.Muted

	cell := func(style lipgloss.Style, i int, s string) string {
		style = style.Width(colWidths[i])
		if t.Right[i] {
			style = style.Align(lipgloss.Right)
		}
		return style.Render(s)
	}

	for i, h := range t.Headers {
		sb.WriteString(cell(headerStyle, i, h))
		if i < len(t.Headers)-1 {
			sb.WriteString(sepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	totalWidth := len(t.Headers) - 1
	for _, w := range colWidths {
		totalWidth += w
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("-", totalWidth)) + "\n")

	rows := t.Rows
	if maxRows > 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
	}
	for r, row := range rows {
		style := rowStyle
		if r == t.Selected {
			style = selStyle
		}
		for i, c := range row {
			if i < len(colWidths) {
				sb.WriteString(cell(style, i, c))
				if i < len(row)-1 {
					sb.WriteString(sepStyle.Render("|"))
				}
			}
		}
		sb.WriteString("\n")
	}
	if hidden := len(t.Rows) - len(rows); hidden > 0 {
		sb.WriteString(styles.Muted.Render("  … " + present.FormatCount(hidden) + " more rows"))
		sb.WriteString("\n")
	}

	return sb.String()
}
