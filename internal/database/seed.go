package database

import (
	"log"
	"time"

	"quickcourt/internal/domain"
	"quickcourt/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Review{},
		&domain.Booking{},
		&repository.SessionSlot{},
	)
}

// SeedDemoData inserts the demo reviews and bookings. Idempotent: rows
// that already exist are left alone.
func SeedDemoData(db *gorm.DB) error {
	log.Println("Seeding demo data...")

	reviews := []domain.Review{
		{
			ID:        "1",
			VenueID:   1,
			UserID:    "demo-user",
			UserName:  "Mitchell Admin",
			Rating:    5,
			Comment:   "Very fast, well maintained",
			Date:      "16 June 2024, 5:34 PM",
			CreatedAt: time.Date(2024, time.June, 16, 17, 34, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			VenueID:   1,
			UserID:    "demo-user-2",
			UserName:  "Sarah Johnson",
			Rating:    4,
			Comment:   "Great facilities and friendly staff",
			Date:      "15 June 2024, 3:20 PM",
			CreatedAt: time.Date(2024, time.June, 15, 15, 20, 0, 0, time.UTC),
		},
	}

	bookings := []domain.Booking{
		{
			ID:        1,
			UserID:    "demo-user",
			Venue:     "SBR Badminton Court",
			Sport:     "Badminton",
			Date:      "10 June 2024",
			Time:      "5:00 PM - 6:00 PM",
			Location:  "Rajkot, Gujarat",
			Status:    domain.BookingConfirmed,
			CanCancel: false,
			Amount:    1200,
		},
		{
			ID:        2,
			UserID:    "demo-user",
			Venue:     "Skyline Badminton Court",
			Sport:     "Badminton",
			Date:      "18 June 2024",
			Time:      "5:00 PM - 6:00 PM",
			Location:  "Rajkot, Gujarat",
			Status:    domain.BookingConfirmed,
			CanCancel: true,
			Amount:    1500,
		},
		{
			ID:        3,
			UserID:    "demo-user",
			Venue:     "Elite Football Ground",
			Sport:     "Football",
			Date:      "25 June 2024",
			Time:      "7:00 PM - 8:00 PM",
			Location:  "Ahmedabad, Gujarat",
			Status:    domain.BookingCancelled,
			CanCancel: false,
			Amount:    800,
		},
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&reviews).Error; err != nil {
		return err
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&bookings).Error
}
