// Package metric derives ranked views from canonical country records.
package metric

// Kind names one of the selectable ranking dimensions.
type Kind string

const (
	Population      Kind = "population"
	Borders         Kind = "borders"
	Timezones       Kind = "timezones"
	Languages       Kind = "languages"
	RegionCountries Kind = "region-countries"
	RegionTimezones Kind = "region-timezones"
)

var allKinds = []Kind{Population, Borders, Timezones, Languages, RegionCountries, RegionTimezones}

// Kinds returns every selectable kind in menu order.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// Valid reports whether k is one of the six known kinds.
func (k Kind) Valid() bool {
	for _, known := range allKinds {
		if k == known {
			return true
		}
	}
	return false
}

// IsRegion reports whether k aggregates by region rather than by country.
func (k Kind) IsRegion() bool {
	return k == RegionCountries || k == RegionTimezones
}

// ParseKind returns the kind named s and whether it is known.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	return k, k.Valid()
}

// SanitizeKind returns the kind named s, or Population for anything unknown.
func SanitizeKind(s string) Kind {
	if k, ok := ParseKind(s); ok {
		return k
	}
	return Population
}
