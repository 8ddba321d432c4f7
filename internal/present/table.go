package present

import (
	"countryviz/internal/metric"
	"countryviz/internal/view"
)

// TableHeaders are the column titles of the ranking table.
var TableHeaders = []string{"Rank", "Name/Region", "Value", "Percentage"}

// Row is one formatted table row.
type Row struct {
	Rank       int
	Label      string
	Value      string
	Percentage string
	Item       metric.Item
}

// Cells returns the row as display strings in TableHeaders order.
func (r Row) Cells() []string {
	return []string{FormatCount(r.Rank), r.Label, r.Value, r.Percentage}
}

// PageTotal sums the values of items.
func PageTotal(items []metric.Item) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Value
	}
	return total
}

// Rows formats the current page. Ranks are positions in the filtered list,
// so page two of a 25-row view starts at 26. Percentages are shares of the
// current page total.
func Rows(s view.State) []Row {
	total := PageTotal(s.Current)
	offset := s.Offset()
	rows := make([]Row, len(s.Current))
	for i, it := range s.Current {
		rows[i] = Row{
			Rank:       offset + i + 1,
			Label:      it.Label,
			Value:      FormatValue(it.Value),
			Percentage: Percentage(it.Value, total),
			Item:       it,
		}
	}
	return rows
}
