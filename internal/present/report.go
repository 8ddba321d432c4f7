package present

import (
	"fmt"
	"strings"

	"countryviz/internal/view"
)

// Markdown renders the current view as a markdown document: title, search
// banner, ranking table, stats and pager summary.
func Markdown(s view.State) string {
	var b strings.Builder
	labels := LabelsFor(s.Metric)

	fmt.Fprintf(&b, "# %s\n\n", labels.ChartTitle)

	if banner := SearchBanner(s); banner.Visible {
		fmt.Fprintf(&b, "> **%s**  \n> %s\n\n", banner.Title, banner.Detail)
	}

	if msg := EmptyMessage(s, false); msg != nil {
		fmt.Fprintf(&b, "_%s_\n\n", strings.Join(msg, " "))
	} else {
		b.WriteString("| " + strings.Join(TableHeaders, " | ") + " |\n")
		b.WriteString("|---:|:---|---:|---:|\n")
		for _, row := range Rows(s) {
			cells := row.Cells()
			cells[1] = escapeCell(cells[1])
			b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
		}
		b.WriteString("\n")
	}

	if stats := Stats(s); len(stats) > 0 {
		b.WriteString("## Stats\n\n")
		for _, st := range stats {
			fmt.Fprintf(&b, "- **%s:** %s\n", st.Label, st.Value)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s\n", PagerSummary(s))
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
