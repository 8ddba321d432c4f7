package present

import (
	"strings"

	"countryviz/internal/metric"
)

// Field is one name/value line of a tooltip.
type Field struct {
	Name  string
	Value string
}

// Tooltip is the detail card for one item.
type Tooltip struct {
	Title      string
	ValueLabel string
	Value      string
	Fields     []Field
}

const (
	notAvailable = "N/A"
	sampleSize   = 5
)

// TooltipFor builds the detail card for it under the given metric kind.
func TooltipFor(kind metric.Kind, it metric.Item) Tooltip {
	t := Tooltip{
		Title:      it.Label,
		ValueLabel: LabelsFor(kind).ValueLabel,
		Value:      FormatValue(it.Value),
	}

	switch {
	case it.Country != nil:
		c := it.Country
		t.Title = c.Name
		t.Fields = []Field{
			{"Capital", orNA(c.Capital)},
			{"Region", orNA(c.Region)},
			{"Population", positiveOrNA(c.Population, "")},
			{"Area", positiveOrNA(c.Area, " km²")},
			{"Borders", FormatCount(len(c.Borders))},
			{"Timezones", orNA(strings.Join(c.Timezones, ", "))},
			{"Languages", orNA(strings.Join(c.LanguageNames(), ", "))},
		}
	case it.Region != nil:
		r := it.Region
		sample := r.Countries
		suffix := ""
		if len(sample) > sampleSize {
			sample = sample[:sampleSize]
			suffix = "..."
		}
		t.Fields = []Field{
			{"Total Countries", FormatCount(len(r.Countries))},
			{"Unique Timezones", FormatCount(len(r.Timezones))},
			{"Sample Countries", strings.Join(sample, ", ") + suffix},
		}
	}
	return t
}

// Lines renders the tooltip as plain text lines.
func (t Tooltip) Lines() []string {
	lines := []string{t.Title, t.ValueLabel + ": " + t.Value}
	for _, f := range t.Fields {
		lines = append(lines, f.Name+": "+f.Value)
	}
	return lines
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func positiveOrNA(v float64, unit string) string {
	if v <= 0 {
		return notAvailable
	}
	return FormatValue(v) + unit
}
