package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
	BookingPending   BookingStatus = "Pending"
)

// Booking rows are demo fixtures. Venue is a denormalized display name,
// not a foreign key into the catalog.
type Booking struct {
	ID        int           `json:"id" gorm:"primaryKey"`
	UserID    string        `json:"user_id" gorm:"index"`
	Venue     string        `json:"venue"`
	Sport     string        `json:"sport"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	Location  string        `json:"location"`
	Status    BookingStatus `json:"status"`
	CanCancel bool          `json:"can_cancel"`
	Amount    float64       `json:"amount"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
