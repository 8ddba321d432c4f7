package present

import (
	"fmt"

	"countryviz/internal/view"
)

const (
	LoadingMessage   = "Loading countries data..."
	SelectPrompt     = "Select a data type from the menu above to visualize the data."
	NoMatchMessage   = "No data found matching your search criteria."
	NoMatchHint      = "Try adjusting your search term or clearing the filter."
	NoDataMessage    = "No data available for the selected option."
	NoResultsHint    = "Try a different search term"
	LoadErrorMessage = "Error loading data. Please check the data source and try again."
)

// LoadedMessage reports the dataset size before any metric is selected.
func LoadedMessage(valid, skipped int) string {
	if skipped > 0 {
		return fmt.Sprintf("Loaded %d records (skipped %d invalid).", valid, skipped)
	}
	return fmt.Sprintf("Loaded %d records.", valid)
}

// Banner is the search result banner. Visible is false when no search is
// active.
type Banner struct {
	Visible bool
	Title   string
	Detail  string
	Empty   bool
}

// SearchBanner summarises the active search.
func SearchBanner(s view.State) Banner {
	if !s.SearchActive() {
		return Banner{}
	}
	if s.FilteredCount() == 0 {
		return Banner{
			Visible: true,
			Title:   fmt.Sprintf("No results found for: \"%s\"", s.DisplayTerm()),
			Detail:  NoResultsHint,
			Empty:   true,
		}
	}
	return Banner{
		Visible: true,
		Title:   fmt.Sprintf("Search Results for: \"%s\"", s.DisplayTerm()),
		Detail:  fmt.Sprintf("Found %d items", s.FilteredCount()),
	}
}

// EmptyMessage returns the lines to show in place of a chart or table when
// the current page is empty. withHint adds the follow-up line the chart
// shows when a search matched nothing. It returns nil when there is data.
func EmptyMessage(s view.State, withHint bool) []string {
	switch s.Presence() {
	case view.NoResults:
		if withHint {
			return []string{NoMatchMessage, NoMatchHint}
		}
		return []string{NoMatchMessage}
	case view.NoData:
		return []string{NoDataMessage}
	}
	return nil
}
