package metric

import (
	"cmp"
	"slices"

	"countryviz/internal/country"
)

// Derive builds the ranked view for k over the whole dataset. Unknown kinds
// yield an empty view.
func Derive(records []country.Record, k Kind) []Item {
	if k.IsRegion() {
		return DeriveRegion(records, k)
	}
	return DeriveCountry(records, k)
}

// DeriveCountry ranks countries by population or by the size of one of
// their lists. Items with a value of zero are dropped; ties keep input order.
func DeriveCountry(records []country.Record, k Kind) []Item {
	if !k.Valid() || k.IsRegion() {
		return []Item{}
	}

	items := make([]Item, 0, len(records))
	for i := range records {
		rec := &records[i]
		if rec.Name == "" {
			continue
		}
		v := countryValue(rec, k)
		if v <= 0 {
			continue
		}
		items = append(items, Item{Label: rec.Name, Value: v, Kind: ItemCountry, Country: rec})
	}
	sortDescending(items)
	return items
}

func countryValue(rec *country.Record, k Kind) float64 {
	switch k {
	case Population:
		return rec.Population
	case Borders:
		return float64(len(rec.Borders))
	case Timezones:
		return float64(len(rec.Timezones))
	case Languages:
		return float64(len(rec.Languages))
	}
	return 0
}

// DeriveRegion groups the dataset by region and ranks regions by their
// distinct country or timezone count. Records without a region are left out.
func DeriveRegion(records []country.Record, k Kind) []Item {
	if !k.IsRegion() {
		return []Item{}
	}

	aggs := Aggregate(records)
	items := make([]Item, 0, len(aggs))
	for _, agg := range aggs {
		var v float64
		if k == RegionCountries {
			v = float64(len(agg.Countries))
		} else {
			v = float64(len(agg.Timezones))
		}
		if v <= 0 {
			continue
		}
		items = append(items, Item{Label: agg.Name, Value: v, Kind: ItemRegion, Region: agg})
	}
	sortDescending(items)
	return items
}

// Aggregate builds one RegionAggregate per region, in order of first
// appearance. It runs over the full dataset in a single pass.
func Aggregate(records []country.Record) []*RegionAggregate {
	var order []*RegionAggregate
	byName := make(map[string]*regionSets)

	for i := range records {
		rec := &records[i]
		if rec.Name == "" || rec.Region == "" {
			continue
		}
		sets, ok := byName[rec.Region]
		if !ok {
			sets = newRegionSets(rec.Region)
			byName[rec.Region] = sets
			order = append(order, sets.agg)
		}
		sets.addCountry(rec.Name)
		for _, tz := range rec.Timezones {
			sets.addTimezone(tz)
		}
	}
	return order
}

type regionSets struct {
	agg       *RegionAggregate
	countries map[string]struct{}
	timezones map[string]struct{}
}

func newRegionSets(name string) *regionSets {
	return &regionSets{
		agg:       &RegionAggregate{Name: name, Countries: []string{}, Timezones: []string{}},
		countries: make(map[string]struct{}),
		timezones: make(map[string]struct{}),
	}
}

func (s *regionSets) addCountry(name string) {
	if _, ok := s.countries[name]; ok {
		return
	}
	s.countries[name] = struct{}{}
	s.agg.Countries = append(s.agg.Countries, name)
}

func (s *regionSets) addTimezone(tz string) {
	if tz == "" {
		return
	}
	if _, ok := s.timezones[tz]; ok {
		return
	}
	s.timezones[tz] = struct{}{}
	s.agg.Timezones = append(s.agg.Timezones, tz)
}

func sortDescending(items []Item) {
	slices.SortStableFunc(items, func(a, b Item) int {
		return cmp.Compare(b.Value, a.Value)
	})
}
