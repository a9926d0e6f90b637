package domain

import "time"

type UserType string

const (
	UserTypePlayer        UserType = "Player"
	UserTypeFacilityOwner UserType = "Facility Owner"
)

type User struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash  string    `json:"-"`
	UserType      UserType  `json:"user_type"`
	ProfileImage  string    `json:"profile_image,omitempty"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
