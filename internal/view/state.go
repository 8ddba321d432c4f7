// Package view owns the dashboard's view state: the selected metric, the
// search filter and the pagination window, and the derived slices they
// produce.
package view

import (
	"countryviz/internal/metric"
)

// Presence classifies what the current page can show.
type Presence int

const (
	// HasData means the current page has at least one item.
	HasData Presence = iota
	// NoResults means a search is active and matched nothing.
	NoResults
	// NoData means there is nothing to show and no search is active.
	NoData
)

func (p Presence) String() string {
	switch p {
	case HasData:
		return "has-data"
	case NoResults:
		return "no-results"
	default:
		return "no-data"
	}
}

// State is an immutable snapshot of the view. Transitions build a new State
// instead of editing one in place.
//
// Current is always Filtered sliced to Page, and Page is always within
// [1, max(1, TotalPages())].
type State struct {
	Metric     metric.Kind
	All        []metric.Item
	SearchTerm string
	Filtered   []metric.Item
	PageSize   PageSize
	Page       int
	Current    []metric.Item

	// SearchInput is the term as entered, for display. It is empty
	// whenever SearchTerm is.
	SearchInput string
}

// DisplayTerm is the search term to echo back to the user.
func (s State) DisplayTerm() string {
	if s.SearchInput != "" {
		return s.SearchInput
	}
	return s.SearchTerm
}

// TotalCount is the size of the unfiltered view.
func (s State) TotalCount() int { return len(s.All) }

// FilteredCount is the number of items matching the search term.
func (s State) FilteredCount() int { return len(s.Filtered) }

// SearchActive reports whether a non-empty search term is applied.
func (s State) SearchActive() bool { return s.SearchTerm != "" }

// TotalPages is ceil(FilteredCount / PageSize), or 1 for ALL.
func (s State) TotalPages() int { return TotalPages(len(s.Filtered), s.PageSize) }

// Presence tells a renderer which empty state, if any, applies.
func (s State) Presence() Presence {
	switch {
	case len(s.Current) > 0:
		return HasData
	case s.SearchActive() && len(s.Filtered) == 0:
		return NoResults
	default:
		return NoData
	}
}

// Offset is the index in Filtered of the first item on the current page.
func (s State) Offset() int {
	if s.PageSize.IsAll() {
		return 0
	}
	return (s.Page - 1) * s.PageSize.N()
}

// Range returns the 1-based positions of the first and last items shown.
// Both are 0 when the page is empty.
func (s State) Range() (first, last int) {
	if len(s.Current) == 0 {
		return 0, 0
	}
	first = s.Offset() + 1
	return first, first + len(s.Current) - 1
}

// HasPrev reports whether goToPage(Page-1) would be accepted.
func (s State) HasPrev() bool { return !s.PageSize.IsAll() && s.Page > 1 }

// HasNext reports whether goToPage(Page+1) would be accepted.
func (s State) HasNext() bool { return !s.PageSize.IsAll() && s.Page < s.TotalPages() }
