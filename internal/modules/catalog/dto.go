package catalog

import (
	"strconv"
	"strings"
)

// The listing UI sends reserved sentinel strings for "do not filter on
// this dimension". They are translated to absent filters here so the
// engine never sees magic values.
const (
	sentinelAllSports    = "All Sports"
	sentinelAllTypes     = "All"
	sentinelAllLevels    = "All Levels"
	sentinelAllLocations = "All Locations"
)

func venueFiltersFromQuery(get func(string) string) VenueFilters {
	f := VenueFilters{
		Sport:      get("sport"),
		VenueType:  get("venue_type"),
		PriceRange: get("price_range"),
		Location:   get("location"),
	}

	if f.Sport == sentinelAllSports {
		f.Sport = ""
	}
	if f.VenueType == sentinelAllTypes {
		f.VenueType = ""
	}

	if raw := strings.TrimSpace(get("rating")); raw != "" {
		if r, err := strconv.ParseFloat(raw, 64); err == nil {
			f.MinRating = r
		}
	}

	return f
}

func playerFiltersFromQuery(get func(string) string) PlayerFilters {
	f := PlayerFilters{
		Sport:    get("sport"),
		Level:    get("level"),
		Location: get("location"),
	}

	if f.Sport == sentinelAllSports {
		f.Sport = ""
	}
	if f.Level == sentinelAllLevels {
		f.Level = ""
	}
	if f.Location == sentinelAllLocations {
		f.Location = ""
	}

	return f
}

func pageFromQuery(get func(string) string) int {
	page, err := strconv.Atoi(get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
