package domain

type VenueType string

const (
	VenueIndoor  VenueType = "Indoor"
	VenueOutdoor VenueType = "Outdoor"
)

// Venue is an immutable catalog entry. The catalog is seeded once at
// startup and never mutated afterwards.
type Venue struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	Sport          string    `json:"sport"`
	Rating         float64   `json:"rating"`
	Reviews        int       `json:"reviews"`
	Price          float64   `json:"price"`
	Image          string    `json:"image"`
	Amenities      []string  `json:"amenities"`
	VenueType      VenueType `json:"venue_type"`
	OperatingHours string    `json:"operating_hours"`
	Address        string    `json:"address"`
}

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelProfessional SkillLevel = "Professional"
)

type Player struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Sport    string     `json:"sport"`
	Location string     `json:"location"`
	Rating   float64    `json:"rating"`
	Matches  int        `json:"matches"`
	Image    string     `json:"image"`
	Level    SkillLevel `json:"level"`
	Bio      string     `json:"bio"`
}
