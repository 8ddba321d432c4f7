package view

import (
	"fmt"
	"testing"

	"countryviz/internal/country"
	"countryviz/internal/metric"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dataset builds n countries with strictly decreasing populations, so the
// population view lists them in index order.
func dataset(n int) []country.Record {
	regions := []string{"Europe", "Asia", "Africa"}
	out := make([]country.Record, n)
	for i := range out {
		out[i] = country.Record{
			Name:       fmt.Sprintf("Country %03d", i),
			Region:     regions[i%len(regions)],
			Population: float64(n - i),
			Borders:    []string{},
			Timezones:  []string{fmt.Sprintf("UTC+%02d:00", i%5)},
			Languages:  []country.Language{},
		}
	}
	return out
}

func itemLabels(items []metric.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label
	}
	return out
}

func requireConsistent(t *testing.T, s State) {
	t.Helper()

	want := SlicePage(s.Filtered, s.Page, s.PageSize)
	if diff := cmp.Diff(itemLabels(want), itemLabels(s.Current)); diff != "" {
		t.Fatalf("current page is not the filtered slice (-want +got):\n%s", diff)
	}
	require.GreaterOrEqual(t, s.Page, 1)
	require.LessOrEqual(t, s.Page, max(1, s.TotalPages()))
	if s.PageSize.IsAll() {
		require.Len(t, s.Current, len(s.Filtered))
	} else {
		require.LessOrEqual(t, len(s.Current), s.PageSize.N())
	}
	if !s.SearchActive() {
		require.Equal(t, itemLabels(s.All), itemLabels(s.Filtered))
	}
}

func TestController_InitialState(t *testing.T) {
	c := NewController(dataset(3))
	s := c.State()
	assert.Equal(t, metric.Kind(""), s.Metric)
	assert.Empty(t, s.Current)
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, Size(DefaultPageSize), s.PageSize)
	assert.Equal(t, NoData, s.Presence())
}

func TestController_SelectMetric(t *testing.T) {
	c := NewController(dataset(120), WithPageSize(Size(25)))

	_ = c.SetSearchTerm("asia")
	tr := c.SelectMetric(metric.Population)
	require.True(t, tr.Accepted())
	assert.Equal(t, ChangeMetric, tr.Change)

	s := tr.State
	assert.Equal(t, metric.Population, s.Metric)
	assert.Equal(t, "", s.SearchTerm)
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, Size(25), s.PageSize, "page size survives a metric change")
	assert.Len(t, s.All, 120)
	assert.Len(t, s.Current, 25)
	assert.Equal(t, "Country 000", s.Current[0].Label)
	requireConsistent(t, s)
}

func TestController_SelectUnknownMetricFallsBack(t *testing.T) {
	c := NewController(dataset(5))
	tr := c.SelectMetric(metric.Kind("gdp"))
	assert.Equal(t, metric.Population, tr.State.Metric)
	assert.Len(t, tr.State.All, 5)
}

func TestController_SetSearchTerm(t *testing.T) {
	c := NewController(dataset(30), WithPageSize(Size(5)))
	c.SelectMetric(metric.Population)
	c.GoToPage(3)

	tr := c.SetSearchTerm("  ASIA ")
	assert.Equal(t, ChangeFilter, tr.Change)
	s := tr.State
	assert.Equal(t, "asia", s.SearchTerm)
	assert.Equal(t, 1, s.Page)
	assert.Len(t, s.Filtered, 10, "region match counts for country items")
	for _, it := range s.Filtered {
		assert.Equal(t, "Asia", it.Country.Region)
	}
	requireConsistent(t, s)

	tr = c.SetSearchTerm("country 02")
	assert.Equal(t, []string{
		"Country 020", "Country 021", "Country 022", "Country 023", "Country 024",
		"Country 025", "Country 026", "Country 027", "Country 028", "Country 029",
	}, itemLabels(tr.State.Filtered))

	tr = c.SetSearchTerm("")
	assert.False(t, tr.State.SearchActive())
	assert.Equal(t, itemLabels(tr.State.All), itemLabels(tr.State.Filtered))
}

func TestController_SearchKeepsInputForDisplay(t *testing.T) {
	c := NewController(dataset(6))
	c.SelectMetric(metric.Population)

	s := c.SetSearchTerm(" ASIA ").State
	assert.Equal(t, "asia", s.SearchTerm)
	assert.Equal(t, " ASIA ", s.SearchInput)
	assert.Equal(t, " ASIA ", s.DisplayTerm())
	assert.Len(t, s.Filtered, 2)

	s = c.SetSearchTerm("   ").State
	assert.Empty(t, s.SearchTerm)
	assert.Empty(t, s.SearchInput)

	c.SetSearchTerm("Europe")
	s = c.SelectMetric(metric.Borders).State
	assert.Empty(t, s.SearchInput, "a new metric starts unfiltered")
}

func TestController_FilteredIsSubsetOfAll(t *testing.T) {
	c := NewController(dataset(40))
	c.SelectMetric(metric.Population)

	for _, term := range []string{"a", "eu", "country 01", "1", "zzz", "AFRICA"} {
		s := c.SetSearchTerm(term).State
		all := map[string]bool{}
		for _, it := range s.All {
			all[it.Label] = true
		}
		for _, it := range s.Filtered {
			assert.True(t, all[it.Label], "%q not in all data", it.Label)
		}
		requireConsistent(t, s)
	}
}

func TestController_RegionSearchMatchesLabelOnly(t *testing.T) {
	records := []country.Record{
		{Name: "France", Region: "Europe", Timezones: []string{"UTC+01:00"}},
		{Name: "Japan", Region: "Asia", Timezones: []string{"UTC+09:00"}},
	}
	c := NewController(records)
	c.SelectMetric(metric.RegionCountries)

	s := c.SetSearchTerm("eur").State
	assert.Equal(t, []string{"Europe"}, itemLabels(s.Filtered))

	s = c.SetSearchTerm("france").State
	assert.Empty(t, s.Filtered, "region items do not match on member countries")
}

func TestController_NoResultsVersusNoData(t *testing.T) {
	c := NewController(dataset(10))
	c.SelectMetric(metric.Population)

	s := c.SetSearchTerm("xyz").State
	assert.Empty(t, s.Filtered)
	assert.True(t, s.SearchActive())
	assert.Equal(t, NoResults, s.Presence())

	empty := NewController(nil)
	s = empty.SelectMetric(metric.Population).State
	assert.Empty(t, s.Filtered)
	assert.Equal(t, NoData, s.Presence())
}

func TestController_SetPageSize(t *testing.T) {
	c := NewController(dataset(120))
	c.SelectMetric(metric.Population)
	c.GoToPage(2)

	tr := c.SetPageSize(ParsePageSize("10000"))
	assert.Equal(t, ChangePageSize, tr.Change)
	assert.Equal(t, Size(50), tr.State.PageSize)
	assert.Equal(t, 1, tr.State.Page)

	tr = c.SetPageSize(ParsePageSize("all"))
	assert.True(t, tr.State.PageSize.IsAll())
	assert.Equal(t, itemLabels(tr.State.Filtered), itemLabels(tr.State.Current))
	requireConsistent(t, tr.State)
}

func TestController_GoToPage(t *testing.T) {
	c := NewController(dataset(55), WithPageSize(Size(25)))
	c.SelectMetric(metric.Population)

	tr := c.GoToPage(3)
	require.True(t, tr.Accepted())
	assert.Equal(t, ChangePage, tr.Change)
	assert.Len(t, tr.State.Current, 5)
	first, last := tr.State.Range()
	assert.Equal(t, 51, first)
	assert.Equal(t, 55, last)

	for _, n := range []int{0, -1, 4, 100} {
		before := c.State()
		tr := c.GoToPage(n)
		assert.False(t, tr.Accepted(), "page %d", n)
		assert.Equal(t, before.Page, c.State().Page)
	}

	c.SetPageSize(All)
	assert.False(t, c.GoToPage(1).Accepted(), "paging is disabled for ALL")
}

func TestController_NextPrev(t *testing.T) {
	c := NewController(dataset(12), WithPageSize(Size(5)))
	c.SelectMetric(metric.Population)

	assert.False(t, c.PrevPage().Accepted())
	assert.True(t, c.NextPage().Accepted())
	assert.True(t, c.NextPage().Accepted())
	assert.False(t, c.NextPage().Accepted())
	assert.Equal(t, 3, c.State().Page)
	assert.False(t, c.State().HasNext())
	assert.True(t, c.State().HasPrev())
}

func TestController_PagesReconstructFiltered(t *testing.T) {
	for _, size := range []int{1, 3, 7, 25, 200} {
		c := NewController(dataset(61), WithPageSize(Size(size)))
		c.SelectMetric(metric.Population)
		s := c.SetSearchTerm("e").State

		var joined []string
		for p := 1; p <= s.TotalPages(); p++ {
			tr := c.GoToPage(p)
			require.True(t, tr.Accepted() || p == 1)
			joined = append(joined, itemLabels(c.State().Current)...)
		}
		assert.Equal(t, itemLabels(s.Filtered), joined, "size %d", size)
	}
}

func TestController_EmptyFilteredPaging(t *testing.T) {
	c := NewController(dataset(10))
	c.SelectMetric(metric.Population)
	s := c.SetSearchTerm("nothing matches").State

	assert.Equal(t, 0, s.TotalPages())
	assert.Equal(t, 1, s.Page)
	assert.False(t, c.GoToPage(1).Accepted())
	requireConsistent(t, c.State())
}
