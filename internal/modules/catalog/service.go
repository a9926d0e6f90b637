package catalog

import (
	"errors"

	"quickcourt/internal/domain"
	"quickcourt/internal/pkg/pagination"
	"quickcourt/internal/repository"
)

var ErrVenueNotFound = errors.New("venue not found")

type Service struct {
	catalog *repository.CatalogRepository
}

func NewService(catalog *repository.CatalogRepository) *Service {
	return &Service{catalog: catalog}
}

// VenuePage is one page of search results plus the page-number window the
// listing screen renders.
type VenuePage struct {
	Venues      []domain.Venue `json:"venues"`
	Total       int            `json:"total"`
	Page        int            `json:"page"`
	TotalPages  int            `json:"total_pages"`
	PageNumbers []int          `json:"page_numbers"`
}

type PlayerPage struct {
	Players     []domain.Player `json:"players"`
	Total       int             `json:"total"`
	Page        int             `json:"page"`
	TotalPages  int             `json:"total_pages"`
	PageNumbers []int           `json:"page_numbers"`
}

func (s *Service) SearchVenues(query string, filters VenueFilters, sortKey string, page int) VenuePage {
	if page < 1 {
		page = 1
	}

	results := SortVenues(SearchVenues(s.catalog.Venues(), query, filters), sortKey)
	p := pagination.Paginate(results, pagination.PageSize, page)

	return VenuePage{
		Venues:      p.Items,
		Total:       len(results),
		Page:        page,
		TotalPages:  p.TotalPages,
		PageNumbers: pagination.Window(page, p.TotalPages),
	}
}

func (s *Service) SearchPlayers(query string, filters PlayerFilters, page int) PlayerPage {
	if page < 1 {
		page = 1
	}

	results := SearchPlayers(s.catalog.Players(), query, filters)
	p := pagination.Paginate(results, pagination.PageSize, page)

	return PlayerPage{
		Players:     p.Items,
		Total:       len(results),
		Page:        page,
		TotalPages:  p.TotalPages,
		PageNumbers: pagination.Window(page, p.TotalPages),
	}
}

func (s *Service) GetVenue(id int) (*domain.Venue, error) {
	venue, ok := s.catalog.VenueByID(id)
	if !ok {
		return nil, ErrVenueNotFound
	}
	return venue, nil
}
