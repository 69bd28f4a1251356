package models

import (
	"time"
)

// User defines the user model based on the 'users' table.
// Role-conditional columns are nullable; which of them are meaningful
// is decided by UserType alone.
type User struct {
	ID           int64    `json:"id" db:"id"`
	FullName     string   `json:"full_name" db:"full_name"`
	Email        string   `json:"email" db:"email"`
	PasswordHash string   `json:"-" db:"password_hash"`
	CollegeID    string   `json:"college_id" db:"college_id"`
	CollegeEmail string   `json:"college_email" db:"college_email"`
	Department   string   `json:"department" db:"department"`
	UserType     UserType `json:"user_type" db:"user_type"`
	IsVerified   bool     `json:"is_verified" db:"is_verified"`
	IsActive     bool     `json:"is_active" db:"is_active"`

	// Alumni variant
	PassingYear     *int    `json:"passing_year,omitempty" db:"passing_year"`
	CurrentCompany  *string `json:"current_company,omitempty" db:"current_company"`
	CurrentPosition *string `json:"current_position,omitempty" db:"current_position"`
	Bio             *string `json:"bio,omitempty" db:"bio"`
	LinkedinURL     *string `json:"linkedin_url,omitempty" db:"linkedin_url"`
	GithubURL       *string `json:"github_url,omitempty" db:"github_url"`

	// Student variant
	ExpectedPassingYear *int `json:"expected_passing_year,omitempty" db:"expected_passing_year"`
	CurrentYear         *int `json:"current_year,omitempty" db:"current_year"`

	ProfilePicture *string   `json:"profile_picture,omitempty" db:"profile_picture"`
	Skills         *string   `json:"skills,omitempty" db:"skills"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// IsAlumni reports whether the user carries the alumni variant
func (u *User) IsAlumni() bool {
	return u.UserType == UserTypeAlumni
}

// IsStudent reports whether the user carries the student variant
func (u *User) IsStudent() bool {
	return u.UserType == UserTypeStudent
}
