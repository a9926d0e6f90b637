package catalog

import (
	"sort"
	"strconv"
	"strings"

	"quickcourt/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// VenueFilters narrows the venue search. Zero values mean "no filter";
// the HTTP layer translates the UI's sentinel strings ("All Sports",
// "All", ...) before they reach the engine.
type VenueFilters struct {
	Sport      string
	VenueType  string
	PriceRange string // "min-max" or "min-" (open-ended), inclusive bounds
	MinRating  float64
	Location   string
}

type PlayerFilters struct {
	Sport    string
	Level    string
	Location string
}

// SearchVenues returns the subset of venues matching the free-text query
// and every set filter, in input order. It is a total function: malformed
// filter values degrade to "no constraint" rather than failing.
func SearchVenues(venues []domain.Venue, query string, filters VenueFilters) []domain.Venue {
	filtered := make([]domain.Venue, 0, len(venues))

	term := strings.ToLower(strings.TrimSpace(query))
	minPrice, maxPrice, priceOK := parsePriceRange(filters.PriceRange)
	location := strings.ToLower(filters.Location)

	for _, v := range venues {
		if term != "" && !venueMatchesTerm(v, term) {
			continue
		}
		if filters.Sport != "" && v.Sport != filters.Sport {
			continue
		}
		if filters.VenueType != "" && string(v.VenueType) != filters.VenueType {
			continue
		}
		if priceOK {
			if v.Price < minPrice {
				continue
			}
			if maxPrice != nil && v.Price > *maxPrice {
				continue
			}
		}
		if filters.MinRating > 0 && v.Rating < filters.MinRating {
			continue
		}
		if location != "" &&
			!strings.Contains(strings.ToLower(v.Location), location) &&
			!strings.Contains(strings.ToLower(v.Address), location) {
			continue
		}
		filtered = append(filtered, v)
	}

	return filtered
}

func venueMatchesTerm(v domain.Venue, term string) bool {
	if strings.Contains(strings.ToLower(v.Name), term) ||
		strings.Contains(strings.ToLower(v.Location), term) ||
		strings.Contains(strings.ToLower(v.Sport), term) ||
		strings.Contains(strings.ToLower(v.Address), term) {
		return true
	}
	for _, amenity := range v.Amenities {
		if strings.Contains(strings.ToLower(amenity), term) {
			return true
		}
	}
	return false
}

// parsePriceRange parses "min-max" or "min-". A nil max means open-ended.
// Unparsable input disables the price constraint entirely.
func parsePriceRange(s string) (min float64, max *float64, ok bool) {
	if strings.TrimSpace(s) == "" {
		return 0, nil, false
	}

	parts := strings.SplitN(s, "-", 2)
	min, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, nil, false
	}

	if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
		m, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return 0, nil, false
		}
		max = &m
	}

	return min, max, true
}

// Sort keys accepted by SortVenues.
const (
	SortPriceLowHigh  = "price-low-high"
	SortPriceHighLow  = "price-high-low"
	SortRatingHighLow = "rating-high-low"
	SortRatingLowHigh = "rating-low-high"
	SortNameAZ        = "name-a-z"
	SortNameZA        = "name-z-a"
	SortDistance      = "distance"
	SortRelevance     = "relevance"
)

// SortVenues orders a copy of list by the given key. Sorting is stable so
// pagination stays reproducible across repeated calls. Unknown keys fall
// back to relevance (rating desc, review count desc).
func SortVenues(list []domain.Venue, sortKey string) []domain.Venue {
	sorted := make([]domain.Venue, len(list))
	copy(sorted, list)

	switch sortKey {
	case SortPriceLowHigh:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case SortPriceHighLow:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case SortRatingHighLow:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	case SortRatingLowHigh:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating < sorted[j].Rating })
	case SortNameAZ:
		c := newCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortNameZA:
		c := newCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[j].Name, sorted[i].Name) < 0
		})
	case SortDistance:
		// Location name stands in for geodistance; the demo has no
		// coordinates.
		c := newCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Location, sorted[j].Location) < 0
		})
	case SortRelevance:
		fallthrough
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Rating != sorted[j].Rating {
				return sorted[i].Rating > sorted[j].Rating
			}
			return sorted[i].Reviews > sorted[j].Reviews
		})
	}

	return sorted
}

func newCollator() *collate.Collator {
	return collate.New(language.English)
}

// SearchPlayers mirrors SearchVenues for the player directory. There is
// no sort step; callers consume insertion order. The location filter is a
// plain (case-sensitive) substring match, as in the listing screens.
func SearchPlayers(players []domain.Player, query string, filters PlayerFilters) []domain.Player {
	filtered := make([]domain.Player, 0, len(players))

	term := strings.ToLower(strings.TrimSpace(query))

	for _, p := range players {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Sport), term) &&
			!strings.Contains(strings.ToLower(p.Location), term) &&
			!strings.Contains(strings.ToLower(p.Bio), term) {
			continue
		}
		if filters.Sport != "" && p.Sport != filters.Sport {
			continue
		}
		if filters.Level != "" && string(p.Level) != filters.Level {
			continue
		}
		if filters.Location != "" && !strings.Contains(p.Location, filters.Location) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}
