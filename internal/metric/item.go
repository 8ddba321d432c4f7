package metric

import "countryviz/internal/country"

// ItemKind tells whether an Item ranks a country or a region.
type ItemKind string

const (
	ItemCountry ItemKind = "country"
	ItemRegion  ItemKind = "region"
)

// Item is one ranked entry of a derived view. Exactly one of Country and
// Region is set, matching Kind. Items are replaced wholesale on every
// derivation and never mutated.
type Item struct {
	Label   string
	Value   float64
	Kind    ItemKind
	Country *country.Record
	Region  *RegionAggregate
}

// RegionName returns the region the item belongs to: its own label for a
// region item, the country's region otherwise.
func (it Item) RegionName() string {
	switch {
	case it.Region != nil:
		return it.Region.Name
	case it.Country != nil:
		return it.Country.Region
	}
	return ""
}

// RegionAggregate holds the distinct countries and timezones seen in one
// region. Both slices behave as insertion-ordered sets.
type RegionAggregate struct {
	Name      string
	Countries []string
	Timezones []string
}
