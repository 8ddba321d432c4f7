package present

import (
	"fmt"
	"strconv"

	"countryviz/internal/view"
)

// ControlKind distinguishes the pieces of a pager.
type ControlKind int

const (
	ControlPrev ControlKind = iota
	ControlPage
	ControlEllipsis
	ControlNext
)

// Control is one pager element. Page is the target page for Prev, Next and
// page controls; it is 0 for an ellipsis.
type Control struct {
	Kind     ControlKind
	Label    string
	Page     int
	Active   bool
	Disabled bool
}

// pageWindow is how many pages on each side of the current page are listed.
const pageWindow = 2

// Pager lays out the pager controls. It returns nil when paging is off or
// everything fits on one page.
func Pager(s view.State) []Control {
	total := s.TotalPages()
	if s.PageSize.IsAll() || total <= 1 {
		return nil
	}

	cur := s.Page
	start := max(1, cur-pageWindow)
	end := min(total, cur+pageWindow)

	controls := []Control{{Kind: ControlPrev, Label: "Previous", Page: cur - 1, Disabled: cur == 1}}
	if start > 1 {
		controls = append(controls, pageControl(1, cur))
		if start > 2 {
			controls = append(controls, Control{Kind: ControlEllipsis, Label: "..."})
		}
	}
	for p := start; p <= end; p++ {
		controls = append(controls, pageControl(p, cur))
	}
	if end < total {
		if end < total-1 {
			controls = append(controls, Control{Kind: ControlEllipsis, Label: "..."})
		}
		controls = append(controls, pageControl(total, cur))
	}
	controls = append(controls, Control{Kind: ControlNext, Label: "Next", Page: cur + 1, Disabled: cur == total})
	return controls
}

func pageControl(p, cur int) Control {
	return Control{Kind: ControlPage, Label: strconv.Itoa(p), Page: p, Active: p == cur}
}

// PagerSummary describes which slice of the filtered list is shown.
func PagerSummary(s view.State) string {
	n, total := s.FilteredCount(), s.TotalCount()
	switch {
	case s.PageSize.IsAll():
		return fmt.Sprintf("Showing all %d items (%d total)", n, total)
	case s.TotalPages() <= 1:
		return fmt.Sprintf("Showing %d items (%d total)", n, total)
	}
	first := s.Offset() + 1
	last := min(s.Page*s.PageSize.N(), n)
	return fmt.Sprintf("Showing %d-%d of %d items (%d total)", first, last, n, total)
}
