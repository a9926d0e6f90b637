package booking

import (
	"context"
	"sort"
	"testing"

	"quickcourt/internal/domain"
	"quickcourt/internal/modules/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeBookingRepo struct {
	bookings map[int]*domain.Booking
}

func newFakeBookingRepo(bookings ...domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: map[int]*domain.Booking{}}
	for _, b := range bookings {
		cp := b
		repo.bookings[cp.ID] = &cp
	}
	return repo
}

func (r *fakeBookingRepo) GetByUser(_ context.Context, userID string) ([]domain.Booking, error) {
	ids := make([]int, 0, len(r.bookings))
	for id := range r.bookings {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var out []domain.Booking
	for _, id := range ids {
		if b := r.bookings[id]; b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) error {
	if _, ok := r.bookings[booking.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *booking
	r.bookings[cp.ID] = &cp
	return nil
}

type fakeBroadcaster struct {
	events []notification.Event
}

func (b *fakeBroadcaster) Broadcast(ev notification.Event) {
	b.events = append(b.events, ev)
}

func demoBookings() []domain.Booking {
	return []domain.Booking{
		{ID: 1, UserID: "u1", Venue: "SBR Badminton", Sport: "Badminton", Status: domain.BookingConfirmed, CanCancel: false},
		{ID: 2, UserID: "u1", Venue: "Elite Sports Complex", Sport: "Football", Status: domain.BookingConfirmed, CanCancel: true},
		{ID: 3, UserID: "u2", Venue: "Tennis Academy Pro", Sport: "Tennis", Status: domain.BookingCancelled, CanCancel: false},
	}
}

func TestGetUserBookings_ScopedToUser(t *testing.T) {
	svc := NewService(newFakeBookingRepo(demoBookings()...), nil)

	bookings, err := svc.GetUserBookings(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	for _, b := range bookings {
		assert.Equal(t, "u1", b.UserID)
	}

	bookings, err = svc.GetUserBookings(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestCancel_Success(t *testing.T) {
	repo := newFakeBookingRepo(demoBookings()...)
	events := &fakeBroadcaster{}
	svc := NewService(repo, events)

	b, err := svc.Cancel(context.Background(), "u1", 2)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	assert.False(t, b.CanCancel)

	stored, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, stored.Status)

	require.Len(t, events.events, 1)
	assert.Equal(t, "booking_cancelled", events.events[0].Type)
	assert.Contains(t, events.events[0].Message, "Elite Sports Complex")

	// A cancelled booking cannot be cancelled twice.
	_, err = svc.Cancel(context.Background(), "u1", 2)
	assert.ErrorIs(t, err, ErrCancelNotAllowed)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newFakeBookingRepo(demoBookings()...), nil)

	_, err := svc.Cancel(context.Background(), "u1", 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancel_WrongUser(t *testing.T) {
	repo := newFakeBookingRepo(demoBookings()...)
	svc := NewService(repo, nil)

	_, err := svc.Cancel(context.Background(), "u2", 2)
	assert.ErrorIs(t, err, ErrForbidden)

	stored, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, stored.Status)
}

func TestCancel_NotCancellable(t *testing.T) {
	svc := NewService(newFakeBookingRepo(demoBookings()...), nil)

	// Confirmed but flagged non-cancellable.
	_, err := svc.Cancel(context.Background(), "u1", 1)
	assert.ErrorIs(t, err, ErrCancelNotAllowed)

	// Already cancelled.
	_, err = svc.Cancel(context.Background(), "u2", 3)
	assert.ErrorIs(t, err, ErrCancelNotAllowed)
}
