package review

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"quickcourt/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByVenue(ctx context.Context, venueID int) ([]domain.Review, error)
	GetAll(ctx context.Context) ([]domain.Review, error)
}

// Service appends reviews and reads them back newest first. Venue IDs are
// not validated against the catalog, matching the demo's behavior.
type Service struct {
	reviews ReviewRepository

	mu     sync.Mutex
	lastID int64
}

func NewService(reviews ReviewRepository) *Service {
	return &Service{reviews: reviews}
}

// Add validates and stores a review, assigning a millisecond-timestamp
// identifier. Identifiers are strictly increasing even for inserts that
// land in the same millisecond.
func (s *Service) Add(ctx context.Context, venueID int, userID string, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 || strings.TrimSpace(req.Comment) == "" {
		return nil, ErrInvalidReview
	}

	now := time.Now()

	date := req.Date
	if date == "" {
		date = now.Format("2 January 2006, 3:04 PM")
	}

	rv := &domain.Review{
		ID:        s.nextID(now),
		VenueID:   venueID,
		UserID:    userID,
		UserName:  req.UserName,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Date:      date,
		CreatedAt: now,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) GetVenueReviews(ctx context.Context, venueID int) ([]domain.Review, error) {
	return s.reviews.GetByVenue(ctx, venueID)
}

func (s *Service) nextID(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}
