// Package country validates raw country JSON and normalises it into the
// canonical Record shape used by every downstream view.
package country

// Language is a single spoken language of a country.
type Language struct {
	Name string `json:"name" yaml:"name"`
}

// Record is a canonical country record. Every field is present with a
// type-correct default; slices are never nil and never contain empty or
// duplicate entries.
type Record struct {
	Name       string     `json:"name" yaml:"name"`
	Capital    string     `json:"capital" yaml:"capital"`
	Region     string     `json:"region" yaml:"region"`
	Population float64    `json:"population" yaml:"population"`
	Area       float64    `json:"area" yaml:"area"`
	Borders    []string   `json:"borders" yaml:"borders"`
	Timezones  []string   `json:"timezones" yaml:"timezones"`
	Languages  []Language `json:"languages" yaml:"languages"`
}

// LanguageNames returns the language names in their canonical order.
func (r Record) LanguageNames() []string {
	names := make([]string, len(r.Languages))
	for i, l := range r.Languages {
		names[i] = l.Name
	}
	return names
}
