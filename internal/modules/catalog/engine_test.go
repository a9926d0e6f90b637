package catalog

import (
	"testing"

	"quickcourt/internal/domain"
	"quickcourt/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoVenues() []domain.Venue {
	return repository.NewCatalogRepository().Venues()
}

func demoPlayers() []domain.Player {
	return repository.NewCatalogRepository().Players()
}

func TestSearchVenues_EmptyQueryMatchesEverything(t *testing.T) {
	venues := demoVenues()

	assert.Len(t, SearchVenues(venues, "", VenueFilters{}), len(venues))
	assert.Len(t, SearchVenues(venues, "   ", VenueFilters{}), len(venues))
}

func TestSearchVenues_TextQuery(t *testing.T) {
	venues := demoVenues()

	results := SearchVenues(venues, "badminton", VenueFilters{})
	require.Len(t, results, 1)
	assert.Equal(t, "SBR Badminton", results[0].Name)

	// Substring of an amenity tag.
	results = SearchVenues(venues, "top rated", VenueFilters{})
	assert.Len(t, results, 3)

	// Address matches too.
	results = SearchVenues(venues, "ramji mandir", VenueFilters{})
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].ID)

	assert.Empty(t, SearchVenues(venues, "no such venue", VenueFilters{}))
}

func TestSearchVenues_SportFilter(t *testing.T) {
	venues := demoVenues()

	results := SearchVenues(venues, "badminton", VenueFilters{})
	require.Len(t, results, 1)

	// Conflicting sport filter empties the result.
	assert.Empty(t, SearchVenues(venues, "badminton", VenueFilters{Sport: "Football"}))

	results = SearchVenues(venues, "", VenueFilters{Sport: "Football"})
	require.Len(t, results, 1)
	assert.Equal(t, "Elite Sports Complex", results[0].Name)
}

func TestSearchVenues_VenueTypeFilter(t *testing.T) {
	results := SearchVenues(demoVenues(), "", VenueFilters{VenueType: "Indoor"})
	require.NotEmpty(t, results)
	for _, v := range results {
		assert.Equal(t, domain.VenueIndoor, v.VenueType)
	}
}

func TestSearchVenues_PriceRange(t *testing.T) {
	venues := demoVenues()

	results := SearchVenues(venues, "", VenueFilters{PriceRange: "200-400"})
	require.NotEmpty(t, results)
	for _, v := range results {
		assert.GreaterOrEqual(t, v.Price, 200.0)
		assert.LessOrEqual(t, v.Price, 400.0)
	}

	// Open-ended range.
	results = SearchVenues(venues, "", VenueFilters{PriceRange: "500-"})
	require.Len(t, results, 2)
	for _, v := range results {
		assert.GreaterOrEqual(t, v.Price, 500.0)
	}

	// Bounds are inclusive.
	results = SearchVenues(venues, "", VenueFilters{PriceRange: "150-150"})
	require.Len(t, results, 1)
	assert.Equal(t, "Table Tennis Hub", results[0].Name)
}

func TestSearchVenues_MalformedPriceRange(t *testing.T) {
	venues := demoVenues()

	// Unparsable ranges degrade to no constraint rather than erroring or
	// matching nothing.
	for _, bad := range []string{"abc", "abc-def", "100-xyz", "-"} {
		assert.Len(t, SearchVenues(venues, "", VenueFilters{PriceRange: bad}), len(venues), "range %q", bad)
	}
}

func TestSearchVenues_RatingFilter(t *testing.T) {
	results := SearchVenues(demoVenues(), "", VenueFilters{MinRating: 4.5})
	require.Len(t, results, 5)
	for _, v := range results {
		assert.GreaterOrEqual(t, v.Rating, 4.5)
	}
}

func TestSearchVenues_LocationFilter(t *testing.T) {
	venues := demoVenues()

	// Location field match, case-insensitive.
	results := SearchVenues(venues, "", VenueFilters{Location: "satellite"})
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].ID)

	// Address-only match.
	results = SearchVenues(venues, "", VenueFilters{Location: "ahmedabad"})
	assert.Len(t, results, len(venues))
}

func TestSearchVenues_FiltersCompose(t *testing.T) {
	results := SearchVenues(demoVenues(), "", VenueFilters{
		VenueType:  "Indoor",
		PriceRange: "100-250",
		MinRating:  4.4,
	})
	require.Len(t, results, 2)
	assert.Equal(t, "SBR Badminton", results[0].Name)
	assert.Equal(t, "Table Tennis Hub", results[1].Name)
}

func TestSearchVenues_OutputIsSubsetInInputOrder(t *testing.T) {
	venues := demoVenues()
	results := SearchVenues(venues, "", VenueFilters{VenueType: "Outdoor"})

	lastID := 0
	for _, v := range results {
		assert.Greater(t, v.ID, lastID)
		lastID = v.ID
	}
}

func TestSortVenues_Price(t *testing.T) {
	sorted := SortVenues(demoVenues(), SortPriceLowHigh)
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1].Price, sorted[i].Price)
	}

	sorted = SortVenues(demoVenues(), SortPriceHighLow)
	for i := 1; i < len(sorted); i++ {
		assert.GreaterOrEqual(t, sorted[i-1].Price, sorted[i].Price)
	}
}

func TestSortVenues_Name(t *testing.T) {
	sorted := SortVenues(demoVenues(), SortNameAZ)
	assert.Equal(t, "Aqua Sports Center", sorted[0].Name)
	assert.Equal(t, "Tennis Academy Pro", sorted[len(sorted)-1].Name)

	sorted = SortVenues(demoVenues(), SortNameZA)
	assert.Equal(t, "Tennis Academy Pro", sorted[0].Name)
}

func TestSortVenues_Relevance(t *testing.T) {
	sorted := SortVenues(demoVenues(), SortRelevance)

	// Rating desc, review count breaking ties.
	assert.Equal(t, "Premier Cricket Ground", sorted[0].Name) // 4.5 / 12
	assert.Equal(t, "Tennis Academy Pro", sorted[1].Name)     // 4.5 / 9
	assert.Equal(t, "Elite Sports Complex", sorted[len(sorted)-1].Name)

	// Unknown keys fall back to relevance.
	assert.Equal(t, sorted, SortVenues(demoVenues(), "bogus"))
	assert.Equal(t, sorted, SortVenues(demoVenues(), ""))
}

func TestSortVenues_Stable(t *testing.T) {
	// Equal rating and equal review count must keep input order.
	tied := []domain.Venue{
		{ID: 10, Name: "A", Rating: 4.0, Reviews: 5},
		{ID: 11, Name: "B", Rating: 4.0, Reviews: 5},
		{ID: 12, Name: "C", Rating: 4.0, Reviews: 5},
	}
	sorted := SortVenues(tied, SortRelevance)
	assert.Equal(t, []int{10, 11, 12}, []int{sorted[0].ID, sorted[1].ID, sorted[2].ID})

	// Sorting an already-sorted list is a no-op.
	once := SortVenues(demoVenues(), SortPriceLowHigh)
	twice := SortVenues(once, SortPriceLowHigh)
	assert.Equal(t, once, twice)
}

func TestSortVenues_DoesNotMutateInput(t *testing.T) {
	venues := demoVenues()
	first := venues[0].Name
	_ = SortVenues(venues, SortNameZA)
	assert.Equal(t, first, venues[0].Name)
}

func TestSearchPlayers_TextQuery(t *testing.T) {
	players := demoPlayers()

	// Bio matches count too.
	results := SearchPlayers(players, "doubles", PlayerFilters{})
	require.Len(t, results, 1)
	assert.Equal(t, "Alex Johnson", results[0].Name)

	results = SearchPlayers(players, "jodhpur", PlayerFilters{})
	assert.Len(t, results, 3)

	assert.Len(t, SearchPlayers(players, "", PlayerFilters{}), len(players))
}

func TestSearchPlayers_Filters(t *testing.T) {
	players := demoPlayers()

	results := SearchPlayers(players, "", PlayerFilters{Sport: "Tennis"})
	require.Len(t, results, 1)
	assert.Equal(t, "Sarah Williams", results[0].Name)

	results = SearchPlayers(players, "", PlayerFilters{Level: "Intermediate"})
	assert.Len(t, results, 3)

	// The player location filter is a plain substring match and is
	// case-sensitive, unlike the venue location filter.
	results = SearchPlayers(players, "", PlayerFilters{Location: "Ahmedabad"})
	assert.Len(t, results, 3)
	assert.Empty(t, SearchPlayers(players, "", PlayerFilters{Location: "ahmedabad"}))
}

func TestSearchPlayers_PreservesInsertionOrder(t *testing.T) {
	results := SearchPlayers(demoPlayers(), "", PlayerFilters{Level: "Intermediate"})
	require.Len(t, results, 3)
	assert.Equal(t, []int{2, 5, 6}, []int{results[0].ID, results[1].ID, results[2].ID})
}
