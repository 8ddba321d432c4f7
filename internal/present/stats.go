package present

import (
	"fmt"

	"countryviz/internal/view"
)

// Stat is one labelled figure in the stats panel.
type Stat struct {
	Value string
	Label string
}

// Stats summarises the current page. It returns nil when the page is empty
// so the panel renders blank.
func Stats(s view.State) []Stat {
	if len(s.Current) == 0 {
		return nil
	}

	total := PageTotal(s.Current)
	lo, hi := s.Current[0].Value, s.Current[0].Value
	for _, it := range s.Current[1:] {
		lo = min(lo, it.Value)
		hi = max(hi, it.Value)
	}
	avg := total / float64(len(s.Current))

	countLabel := "Current Page Items"
	pageValue, pageLabel := fmt.Sprintf("%d/%d", s.Page, s.TotalPages()), "Current Page"
	if s.PageSize.IsAll() {
		countLabel = "Total Items"
		pageValue, pageLabel = "All", "Display Mode"
	}

	return []Stat{
		{Value: FormatCount(len(s.Current)), Label: countLabel},
		{Value: FormatCount(s.FilteredCount()), Label: "Filtered Items"},
		{Value: FormatCount(s.TotalCount()), Label: "Total Available"},
		{Value: pageValue, Label: pageLabel},
		{Value: FormatRounded(avg), Label: "Average Value"},
		{Value: FormatValue(total), Label: "Page Total Value"},
		{Value: FormatValue(hi), Label: "Max Value"},
		{Value: FormatValue(lo), Label: "Min Value"},
	}
}
