package domain

import "time"

// Review identifiers are millisecond-timestamp strings, strictly
// increasing in generation order. Reviews are append-only.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	VenueID   int       `json:"venue_id" gorm:"index"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
