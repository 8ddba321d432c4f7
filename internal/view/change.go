package view

import "strings"

// Change is a set of flags describing what a transition altered.
type Change uint8

const (
	ChangeMetric Change = 1 << iota
	ChangeFilter
	ChangePageSize
	ChangePage
)

// Has reports whether all flags in other are set.
func (c Change) Has(other Change) bool { return c&other == other && other != 0 }

// Any reports whether any flag in other is set.
func (c Change) Any(other Change) bool { return c&other != 0 }

func (c Change) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	for _, f := range []struct {
		flag Change
		name string
	}{
		{ChangeMetric, "metric"},
		{ChangeFilter, "filter"},
		{ChangePageSize, "page-size"},
		{ChangePage, "page"},
	} {
		if c&f.flag != 0 {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// Transition is the result of one controller input: the state after the
// input and what changed. A rejected input has Change 0 and leaves State as
// it was.
type Transition struct {
	Change Change
	State  State
}

// Accepted reports whether the input changed the state.
func (t Transition) Accepted() bool { return t.Change != 0 }
