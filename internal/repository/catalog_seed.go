package repository

import "quickcourt/internal/domain"

// Demo catalog fixtures. Field values are part of the external contract;
// tests load them verbatim.

func seedVenues() []domain.Venue {
	return []domain.Venue{
		{
			ID:             1,
			Name:           "SBR Badminton",
			Location:       "Satellite, Jodhpur Village",
			Sport:          "Badminton",
			Rating:         4.5,
			Reviews:        6,
			Price:          200,
			Image:          "https://images.pexels.com/photos/976873/pexels-photo-976873.jpeg",
			Amenities:      []string{"Badminton", "Indoor", "Top Rated", "Budget"},
			VenueType:      domain.VenueIndoor,
			OperatingHours: "7:00AM - 11:00PM",
			Address:        "Sat Rasta, Ramji Mandir Rd, Satellite, Jodhpur Village, Ahmedabad, Gujarat",
		},
		{
			ID:             2,
			Name:           "Elite Sports Complex",
			Location:       "Vaishnavdevi Cir",
			Sport:          "Football",
			Rating:         4.3,
			Reviews:        8,
			Price:          500,
			Image:          "https://images.pexels.com/photos/274422/pexels-photo-274422.jpeg",
			Amenities:      []string{"Football", "Outdoor", "Premium"},
			VenueType:      domain.VenueOutdoor,
			OperatingHours: "6:00AM - 10:00PM",
			Address:        "Vaishnavdevi Circle, Ahmedabad, Gujarat",
		},
		{
			ID:             3,
			Name:           "Premier Cricket Ground",
			Location:       "Vaishnavdevi Cir",
			Sport:          "Cricket",
			Rating:         4.5,
			Reviews:        12,
			Price:          800,
			Image:          "https://images.pexels.com/photos/1661950/pexels-photo-1661950.jpeg",
			Amenities:      []string{"Cricket", "Outdoor", "Top Rated"},
			VenueType:      domain.VenueOutdoor,
			OperatingHours: "5:00AM - 9:00PM",
			Address:        "Vaishnavdevi Circle, Ahmedabad, Gujarat",
		},
		{
			ID:             4,
			Name:           "Aqua Sports Center",
			Location:       "Vaishnavdevi Cir",
			Sport:          "Swimming",
			Rating:         4.5,
			Reviews:        6,
			Price:          300,
			Image:          "https://images.pexels.com/photos/863988/pexels-photo-863988.jpeg",
			Amenities:      []string{"Swimming", "Indoor", "Premium"},
			VenueType:      domain.VenueIndoor,
			OperatingHours: "6:00AM - 10:00PM",
			Address:        "Vaishnavdevi Circle, Ahmedabad, Gujarat",
		},
		{
			ID:             5,
			Name:           "Tennis Academy Pro",
			Location:       "Vaishnavdevi Cir",
			Sport:          "Tennis",
			Rating:         4.5,
			Reviews:        9,
			Price:          400,
			Image:          "https://images.pexels.com/photos/209977/pexels-photo-209977.jpeg",
			Amenities:      []string{"Tennis", "Outdoor", "Top Rated"},
			VenueType:      domain.VenueOutdoor,
			OperatingHours: "6:00AM - 10:00PM",
			Address:        "Vaishnavdevi Circle, Ahmedabad, Gujarat",
		},
		{
			ID:             6,
			Name:           "Table Tennis Hub",
			Location:       "Vaishnavdevi Cir",
			Sport:          "Table Tennis",
			Rating:         4.5,
			Reviews:        4,
			Price:          150,
			Image:          "https://images.pexels.com/photos/976873/pexels-photo-976873.jpeg",
			Amenities:      []string{"Table Tennis", "Indoor", "Budget"},
			VenueType:      domain.VenueIndoor,
			OperatingHours: "7:00AM - 11:00PM",
			Address:        "Vaishnavdevi Circle, Ahmedabad, Gujarat",
		},
	}
}

func seedPlayers() []domain.Player {
	return []domain.Player{
		{
			ID:       1,
			Name:     "Alex Johnson",
			Sport:    "Badminton",
			Location: "Satellite, Ahmedabad",
			Rating:   4.8,
			Matches:  45,
			Image:    "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg",
			Level:    domain.LevelAdvanced,
			Bio:      "Passionate badminton player with 5+ years experience. Love playing doubles!",
		},
		{
			ID:       2,
			Name:     "Sarah Williams",
			Sport:    "Tennis",
			Location: "Pali Road, Jodhpur",
			Rating:   4.6,
			Matches:  32,
			Image:    "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg",
			Level:    domain.LevelIntermediate,
			Bio:      "Tennis enthusiast seeking practice partners for weekend sessions.",
		},
		{
			ID:       3,
			Name:     "Mike Chen",
			Sport:    "Football",
			Location: "Residency Road, Jodhpur",
			Rating:   4.9,
			Matches:  78,
			Image:    "https://images.pexels.com/photos/1040880/pexels-photo-1040880.jpeg",
			Level:    domain.LevelProfessional,
			Bio:      "Former college football player, now looking to play recreationally.",
		},
		{
			ID:       4,
			Name:     "Emma Davis",
			Sport:    "Swimming",
			Location: "Circuit House, Jodhpur",
			Rating:   4.7,
			Matches:  28,
			Image:    "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg",
			Level:    domain.LevelAdvanced,
			Bio:      "Competitive swimmer and coach. Open to training sessions.",
		},
		{
			ID:       5,
			Name:     "James Wilson",
			Sport:    "Cricket",
			Location: "Vaishali, Ahmedabad",
			Rating:   4.5,
			Matches:  52,
			Image:    "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg",
			Level:    domain.LevelIntermediate,
			Bio:      "Cricket lover seeking team for weekend matches.",
		},
		{
			ID:       6,
			Name:     "Lisa Rodriguez",
			Sport:    "Table Tennis",
			Location: "Satellite, Ahmedabad",
			Rating:   4.4,
			Matches:  36,
			Image:    "https://images.pexels.com/photos/733872/pexels-photo-733872.jpeg",
			Level:    domain.LevelIntermediate,
			Bio:      "Table tennis player looking for regular practice partners.",
		},
	}
}
