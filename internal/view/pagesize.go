package view

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultPageSize is used whenever a requested page size is unusable.
	DefaultPageSize = 50
	// MaxPageSize is the largest explicit page size accepted.
	MaxPageSize = 2000
)

// PageSizeChoices are the sizes offered by the pager, in cycling order.
var PageSizeChoices = []PageSize{Size(25), Size(50), Size(100), Size(200), All}

// PageSize is either a fixed number of rows per page or ALL (no paging).
// The zero value is not valid; use Size, All, or ParsePageSize.
type PageSize struct {
	n   int
	all bool
}

// All disables pagination.
var All = PageSize{all: true}

// Size returns a fixed page size, falling back to DefaultPageSize for values
// outside [1, MaxPageSize].
func Size(n int) PageSize {
	if n < 1 || n > MaxPageSize {
		return PageSize{n: DefaultPageSize}
	}
	return PageSize{n: n}
}

// ParsePageSize accepts "all" or a number in [1, MaxPageSize]; fractional
// numbers are floored. Anything else yields DefaultPageSize.
func ParsePageSize(s string) PageSize {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return All
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f < 1 || f > MaxPageSize {
		return PageSize{n: DefaultPageSize}
	}
	return PageSize{n: int(math.Floor(f))}
}

// IsAll reports whether pagination is disabled.
func (p PageSize) IsAll() bool { return p.all }

// N returns the rows per page, or 0 for ALL.
func (p PageSize) N() int {
	if p.all {
		return 0
	}
	if p.n == 0 {
		return DefaultPageSize
	}
	return p.n
}

func (p PageSize) String() string {
	if p.all {
		return "all"
	}
	return strconv.Itoa(p.N())
}

// Next returns the choice after p in PageSizeChoices, wrapping around.
// Sizes not in the list move to the first choice.
func (p PageSize) Next() PageSize {
	for i, c := range PageSizeChoices {
		if c == p {
			return PageSizeChoices[(i+1)%len(PageSizeChoices)]
		}
	}
	return PageSizeChoices[0]
}

// TotalPages is ceil(count / size). It is 0 for an empty list and 1 when
// pagination is disabled.
func TotalPages(count int, size PageSize) int {
	if size.IsAll() {
		return 1
	}
	n := size.N()
	return (count + n - 1) / n
}

// SlicePage returns the items of the given 1-based page.
func SlicePage[T any](items []T, page int, size PageSize) []T {
	if size.IsAll() {
		return items
	}
	n := size.N()
	start := (page - 1) * n
	if start < 0 || start >= len(items) {
		return items[:0]
	}
	end := min(start+n, len(items))
	return items[start:end]
}
