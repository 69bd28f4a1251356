package dto

import (
	"time"

	"github.com/Anurg29/Aluminiconnect/internal/app/models"
)

// UserProfile is the discriminated serialization contract for users:
// a common core plus exactly one role variant, selected by UserType.
type UserProfile struct {
	ID             int64           `json:"id"`
	FullName       string          `json:"full_name"`
	Email          string          `json:"email"`
	CollegeID      string          `json:"college_id"`
	CollegeEmail   string          `json:"college_email"`
	Department     string          `json:"department"`
	UserType       models.UserType `json:"user_type"`
	IsVerified     bool            `json:"is_verified"`
	IsActive       bool            `json:"is_active"`
	ProfilePicture *string         `json:"profile_picture"`
	Skills         *string         `json:"skills"`
	CreatedAt      time.Time       `json:"created_at"`

	Alumni  *AlumniProfile  `json:"alumni,omitempty"`
	Student *StudentProfile `json:"student,omitempty"`
}

// AlumniProfile carries the alumni-only fields
type AlumniProfile struct {
	PassingYear     *int    `json:"passing_year"`
	CurrentCompany  *string `json:"current_company"`
	CurrentPosition *string `json:"current_position"`
	Bio             *string `json:"bio"`
	LinkedinURL     *string `json:"linkedin_url"`
	GithubURL       *string `json:"github_url"`
}

// StudentProfile carries the student-only fields
type StudentProfile struct {
	ExpectedPassingYear *int `json:"expected_passing_year"`
	CurrentYear         *int `json:"current_year"`
}

// NewUserProfile maps a user record onto the serialization contract
func NewUserProfile(u *models.User) *UserProfile {
	profile := &UserProfile{
		ID:             u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		CollegeID:      u.CollegeID,
		CollegeEmail:   u.CollegeEmail,
		Department:     u.Department,
		UserType:       u.UserType,
		IsVerified:     u.IsVerified,
		IsActive:       u.IsActive,
		ProfilePicture: u.ProfilePicture,
		Skills:         u.Skills,
		CreatedAt:      u.CreatedAt,
	}

	if u.IsAlumni() {
		profile.Alumni = &AlumniProfile{
			PassingYear:     u.PassingYear,
			CurrentCompany:  u.CurrentCompany,
			CurrentPosition: u.CurrentPosition,
			Bio:             u.Bio,
			LinkedinURL:     u.LinkedinURL,
			GithubURL:       u.GithubURL,
		}
	} else {
		profile.Student = &StudentProfile{
			ExpectedPassingYear: u.ExpectedPassingYear,
			CurrentYear:         u.CurrentYear,
		}
	}

	return profile
}

// NewUserProfiles maps a slice of user records
func NewUserProfiles(users []*models.User) []*UserProfile {
	profiles := make([]*UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, NewUserProfile(u))
	}
	return profiles
}

// AlumniListResponse is the body of the alumni directory listing
type AlumniListResponse struct {
	Count  int            `json:"count"`
	Alumni []*UserProfile `json:"alumni"`
}

// StudentListResponse is the body of the student directory listing
type StudentListResponse struct {
	Count    int            `json:"count"`
	Students []*UserProfile `json:"students"`
}

// DepartmentListResponse lists the distinct departments
type DepartmentListResponse struct {
	Departments []string `json:"departments"`
}

// DirectoryStatsResponse aggregates over the verified+active population
type DirectoryStatsResponse struct {
	TotalAlumni   int64 `json:"total_alumni"`
	TotalStudents int64 `json:"total_students"`
	TotalUsers    int64 `json:"total_users"`
}

// AlumniFilter holds the conjunctive alumni directory filters
type AlumniFilter struct {
	Department  string `form:"department"`
	Company     string `form:"company"`
	PassingYear *int   `form:"passing_year"`
	Search      string `form:"search"`
}

// StudentFilter holds the conjunctive student directory filters
type StudentFilter struct {
	Department string `form:"department"`
	Year       *int   `form:"year"`
	Search     string `form:"search"`
}
