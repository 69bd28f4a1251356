package dto

import (
	"github.com/Anurg29/Aluminiconnect/internal/app/models"
)

// RegisterRequest carries a new account registration. Role-specific
// fields are optional; only the ones matching user_type are stored.
type RegisterRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	CollegeID    string `json:"college_id" binding:"required"`
	CollegeEmail string `json:"college_email" binding:"required"`
	Department   string `json:"department" binding:"required"`
	UserType     string `json:"user_type" binding:"required"`

	// Alumni variant
	PassingYear     *int    `json:"passing_year"`
	CurrentCompany  *string `json:"current_company"`
	CurrentPosition *string `json:"current_position"`
	Bio             *string `json:"bio"`
	LinkedinURL     *string `json:"linkedin_url"`
	GithubURL       *string `json:"github_url"`

	// Student variant
	ExpectedPassingYear *int `json:"expected_passing_year"`
	CurrentYear         *int `json:"current_year"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Message string       `json:"message"`
	User    *UserProfile `json:"user"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the token pair and the authenticated profile
type LoginResponse struct {
	Message      string       `json:"message"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *UserProfile `json:"user"`
}

// RefreshResponse returns a fresh access token only
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// UpdateProfileRequest is a partial self-update. Fields absent from the
// payload are left untouched; fields not on the role's allow-list are
// ignored, not rejected.
type UpdateProfileRequest struct {
	FullName       *string `json:"full_name"`
	Skills         *string `json:"skills"`
	ProfilePicture *string `json:"profile_picture"`

	// Alumni allow-list
	CurrentCompany  *string `json:"current_company"`
	CurrentPosition *string `json:"current_position"`
	Bio             *string `json:"bio"`
	LinkedinURL     *string `json:"linkedin_url"`
	GithubURL       *string `json:"github_url"`

	// Student allow-list
	CurrentYear *int `json:"current_year"`
}

// UpdateProfileResponse is returned after a profile update
type UpdateProfileResponse struct {
	Message string       `json:"message"`
	User    *UserProfile `json:"user"`
}

// ChangePasswordRequest carries a password change
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// AvatarResponse is returned after a profile picture upload
type AvatarResponse struct {
	Message        string `json:"message"`
	ProfilePicture string `json:"profile_picture"`
}

// ParsedUserType validates and converts the requested role
func (r *RegisterRequest) ParsedUserType() (models.UserType, bool) {
	t := models.UserType(r.UserType)
	return t, t.IsValid()
}
