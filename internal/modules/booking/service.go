package booking

import (
	"context"
	"errors"
	"fmt"

	"quickcourt/internal/domain"
	"quickcourt/internal/modules/notification"

	"gorm.io/gorm"
)

type BookingRepository interface {
	GetByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
}

type Service struct {
	bookings BookingRepository
	events   notification.Broadcaster
}

func NewService(bookings BookingRepository, events notification.Broadcaster) *Service {
	return &Service{bookings: bookings, events: events}
}

func (s *Service) GetUserBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.GetByUser(ctx, userID)
}

// Cancel flips a booking to Cancelled. Only the owner may cancel, and
// only while the booking is Confirmed and still flagged cancellable.
func (s *Service) Cancel(ctx context.Context, userID string, bookingID int) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.UserID != userID {
		return nil, ErrForbidden
	}
	if !b.CanCancel || b.Status != domain.BookingConfirmed {
		return nil, ErrCancelNotAllowed
	}

	b.Status = domain.BookingCancelled
	b.CanCancel = false

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Broadcast(notification.Event{
			Type:    "booking_cancelled",
			Message: fmt.Sprintf("Booking #%d at %s cancelled", b.ID, b.Venue),
		})
	}

	return b, nil
}
