package catalog

import (
	"testing"

	"quickcourt/internal/pkg/pagination"
	"quickcourt/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(repository.NewCatalogRepository())
}

func TestService_SearchVenues_SinglePage(t *testing.T) {
	svc := newTestService()

	page := svc.SearchVenues("", VenueFilters{}, SortRelevance, 1)
	assert.Equal(t, 6, page.Total)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Venues, 6)
	assert.Equal(t, []int{1}, page.PageNumbers)
}

func TestService_SearchVenues_PageBeyondEnd(t *testing.T) {
	svc := newTestService()

	page := svc.SearchVenues("", VenueFilters{}, SortRelevance, 5)
	assert.Empty(t, page.Venues)
	assert.Equal(t, 1, page.TotalPages)
}

func TestService_SearchVenues_BadPageDefaultsToFirst(t *testing.T) {
	svc := newTestService()

	page := svc.SearchVenues("", VenueFilters{}, SortRelevance, 0)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Venues, 6)
}

func TestService_SearchVenues_EmptyResult(t *testing.T) {
	svc := newTestService()

	page := svc.SearchVenues("no such venue", VenueFilters{}, SortRelevance, 1)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Venues)
	assert.Empty(t, page.PageNumbers)
}

func TestService_SearchVenues_SortAppliedBeforePaging(t *testing.T) {
	svc := newTestService()

	page := svc.SearchVenues("", VenueFilters{}, SortPriceLowHigh, 1)
	require.Len(t, page.Venues, 6)
	assert.Equal(t, "Table Tennis Hub", page.Venues[0].Name)
	assert.Equal(t, "Premier Cricket Ground", page.Venues[5].Name)
}

func TestService_SearchPlayers(t *testing.T) {
	svc := newTestService()

	page := svc.SearchPlayers("", PlayerFilters{Sport: "Badminton"}, 1)
	require.Len(t, page.Players, 1)
	assert.Equal(t, "Alex Johnson", page.Players[0].Name)
	assert.Equal(t, 1, page.TotalPages)
}

func TestService_GetVenue(t *testing.T) {
	svc := newTestService()

	venue, err := svc.GetVenue(1)
	require.NoError(t, err)
	assert.Equal(t, "SBR Badminton", venue.Name)

	_, err = svc.GetVenue(999)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestService_PageSizeMatchesListingScreens(t *testing.T) {
	assert.Equal(t, 6, pagination.PageSize)
}
