package auth

type SignupRequest struct {
	UserType     string `json:"user_type" binding:"required"`
	FullName     string `json:"full_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	ProfileImage string `json:"profile_image"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VerifyOTPRequest struct {
	Code string `json:"code" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName     *string `json:"full_name"`
	ProfileImage *string `json:"profile_image"`
}
