package repository

import (
	"sync"

	"quickcourt/internal/domain"
)

// CatalogRepository holds the static venue and player lists. Seeded once,
// read-only afterwards; accessors return copies so callers can sort freely.
type CatalogRepository struct {
	mu      sync.RWMutex
	venues  []domain.Venue
	players []domain.Player
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		venues:  seedVenues(),
		players: seedPlayers(),
	}
}

func (r *CatalogRepository) Venues() []domain.Venue {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Venue, len(r.venues))
	copy(out, r.venues)
	return out
}

func (r *CatalogRepository) Players() []domain.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Player, len(r.players))
	copy(out, r.players)
	return out
}

func (r *CatalogRepository) VenueByID(id int) (*domain.Venue, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.venues {
		if r.venues[i].ID == id {
			v := r.venues[i]
			return &v, true
		}
	}
	return nil, false
}

func (r *CatalogRepository) PlayerByID(id int) (*domain.Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.players {
		if r.players[i].ID == id {
			p := r.players[i]
			return &p, true
		}
	}
	return nil, false
}
