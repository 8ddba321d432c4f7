// Package present turns view state into display-ready text: titles and
// labels per metric kind, formatted numbers, table rows, stats, pager
// controls and the messages shown around them. Everything here is a pure
// function of its inputs so the terminal and HTML renderers share it.
package present

import "countryviz/internal/metric"

// Labels are the display strings tied to a metric kind.
type Labels struct {
	ChartTitle string
	AxisLabel  string
	ValueLabel string
}

// FallbackLabels apply to any kind outside the known six.
var FallbackLabels = Labels{
	ChartTitle: "Country Data Visualization",
	AxisLabel:  "Value",
	ValueLabel: "Value",
}

var labelTable = map[metric.Kind]Labels{
	metric.Population: {
		ChartTitle: "Country Population Distribution",
		AxisLabel:  "Population",
		ValueLabel: "Population",
	},
	metric.Borders: {
		ChartTitle: "Number of Borders by Country",
		AxisLabel:  "Number of Borders",
		ValueLabel: "Borders",
	},
	metric.Timezones: {
		ChartTitle: "Number of Timezones by Country",
		AxisLabel:  "Number of Timezones",
		ValueLabel: "Timezones",
	},
	metric.Languages: {
		ChartTitle: "Number of Languages by Country",
		AxisLabel:  "Number of Languages",
		ValueLabel: "Languages",
	},
	metric.RegionCountries: {
		ChartTitle: "Number of Countries by Region",
		AxisLabel:  "Number of Countries",
		ValueLabel: "Countries",
	},
	metric.RegionTimezones: {
		ChartTitle: "Number of Unique Timezones by Region",
		AxisLabel:  "Number of Unique Timezones",
		ValueLabel: "Unique Timezones",
	},
}

// LabelsFor returns the labels for kind, or FallbackLabels.
func LabelsFor(kind metric.Kind) Labels {
	if l, ok := labelTable[kind]; ok {
		return l
	}
	return FallbackLabels
}

// MenuLabel is the short name used in metric pickers.
func MenuLabel(kind metric.Kind) string {
	switch kind {
	case metric.Population:
		return "Population"
	case metric.Borders:
		return "Borders"
	case metric.Timezones:
		return "Timezones"
	case metric.Languages:
		return "Languages"
	case metric.RegionCountries:
		return "Countries by Region"
	case metric.RegionTimezones:
		return "Timezones by Region"
	}
	return string(kind)
}
