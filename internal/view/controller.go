package view

import (
	"strings"

	"countryviz/internal/country"
	"countryviz/internal/metric"

	"go.uber.org/zap"
)

// Controller is the single writer of the view state. Each input method
// computes a complete new State, stores it and returns it with the set of
// things that changed. Callers must not invoke it from more than one
// goroutine at a time.
type Controller struct {
	records []country.Record
	state   State
	logger  *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithPageSize sets the initial page size.
func WithPageSize(size PageSize) Option {
	return func(c *Controller) { c.state.PageSize = size }
}

// WithLogger sets the logger used for transition and fallback messages.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController creates a controller over a canonical dataset. No metric is
// selected until SelectMetric is called.
func NewController(records []country.Record, opts ...Option) *Controller {
	c := &Controller{
		records: records,
		logger:  zap.NewNop(),
		state: State{
			All:      []metric.Item{},
			Filtered: []metric.Item{},
			Current:  []metric.Item{},
			PageSize: Size(DefaultPageSize),
			Page:     1,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current snapshot.
func (c *Controller) State() State { return c.state }

// Records returns the canonical dataset the controller derives from.
func (c *Controller) Records() []country.Record { return c.records }

// SelectMetric derives the ranked view for kind over the full dataset and
// resets the search term and page. The page size is kept. Unknown kinds fall
// back to population.
func (c *Controller) SelectMetric(kind metric.Kind) Transition {
	if !kind.Valid() {
		c.logger.Debug("unknown metric kind, using population", zap.String("kind", string(kind)))
		kind = metric.Population
	}

	all := metric.Derive(c.records, kind)
	next := State{
		Metric:   kind,
		All:      all,
		Filtered: all,
		PageSize: c.state.PageSize,
		Page:     1,
	}
	return c.commit(ChangeMetric, next)
}

// SetSearchTerm filters the view by a case-insensitive substring of the
// label or, for country items, of the country's region. An empty term shows
// everything. The page resets to 1.
func (c *Controller) SetSearchTerm(term string) Transition {
	needle := NormalizeTerm(term)

	next := c.state
	next.SearchTerm = needle
	next.SearchInput = ""
	if needle != "" {
		next.SearchInput = term
	}
	next.Filtered = Filter(c.state.All, needle)
	next.Page = 1
	return c.commit(ChangeFilter, next)
}

// ClearFilter is SetSearchTerm("").
func (c *Controller) ClearFilter() Transition {
	return c.SetSearchTerm("")
}

// SetPageSize changes the rows per page and resets the page to 1.
func (c *Controller) SetPageSize(size PageSize) Transition {
	if !size.IsAll() {
		size = Size(size.N())
	}
	next := c.state
	next.PageSize = size
	next.Page = 1
	return c.commit(ChangePageSize, next)
}

// GoToPage moves to page n. It is rejected when pagination is disabled or n
// is outside [1, TotalPages].
func (c *Controller) GoToPage(n int) Transition {
	s := c.state
	if s.PageSize.IsAll() || n < 1 || n > s.TotalPages() {
		c.logger.Debug("page change rejected",
			zap.Int("page", n),
			zap.Int("total_pages", s.TotalPages()),
			zap.Stringer("page_size", s.PageSize))
		return Transition{State: s}
	}
	next := s
	next.Page = n
	return c.commit(ChangePage, next)
}

// NextPage is GoToPage(Page+1).
func (c *Controller) NextPage() Transition { return c.GoToPage(c.state.Page + 1) }

// PrevPage is GoToPage(Page-1).
func (c *Controller) PrevPage() Transition { return c.GoToPage(c.state.Page - 1) }

func (c *Controller) commit(change Change, next State) Transition {
	next.Current = SlicePage(next.Filtered, next.Page, next.PageSize)
	c.state = next

	c.logger.Debug("view state changed",
		zap.Stringer("change", change),
		zap.String("metric", string(next.Metric)),
		zap.String("search", next.SearchTerm),
		zap.Int("filtered", len(next.Filtered)),
		zap.Int("page", next.Page),
		zap.Stringer("page_size", next.PageSize))

	return Transition{Change: change, State: next}
}

// NormalizeTerm lowercases and trims a search term.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Filter returns the items matching an already normalised term. The
// returned slice is items itself when the term is empty.
func Filter(items []metric.Item, needle string) []metric.Item {
	if needle == "" {
		return items
	}
	out := make([]metric.Item, 0, len(items))
	for _, it := range items {
		if matches(it, needle) {
			out = append(out, it)
		}
	}
	return out
}

func matches(it metric.Item, needle string) bool {
	if strings.Contains(strings.ToLower(it.Label), needle) {
		return true
	}
	return it.Kind == metric.ItemCountry && it.Country != nil &&
		it.Country.Region != "" &&
		strings.Contains(strings.ToLower(it.Country.Region), needle)
}
