package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Anurg29/Aluminiconnect/internal/app/models"
)

func TestNewUserProfile_Variants(t *testing.T) {
	year := 2019
	company := "Acme Corp"

	alumni := &models.User{
		ID:             9,
		FullName:       "Priya Sharma",
		UserType:       models.UserTypeAlumni,
		PassingYear:    &year,
		CurrentCompany: &company,
	}
	profile := NewUserProfile(alumni)
	assert.NotNil(t, profile.Alumni)
	assert.Nil(t, profile.Student)
	assert.Equal(t, &year, profile.Alumni.PassingYear)
	assert.Equal(t, &company, profile.Alumni.CurrentCompany)

	currentYear := 3
	student := &models.User{
		ID:          3,
		FullName:    "Rahul Verma",
		UserType:    models.UserTypeStudent,
		CurrentYear: &currentYear,
	}
	profile = NewUserProfile(student)
	assert.Nil(t, profile.Alumni)
	assert.NotNil(t, profile.Student)
	assert.Equal(t, &currentYear, profile.Student.CurrentYear)
}

func TestUserProfile_JSONOmitsOtherVariant(t *testing.T) {
	profile := NewUserProfile(&models.User{ID: 3, UserType: models.UserTypeStudent})

	payload, err := json.Marshal(profile)
	assert.NoError(t, err)
	assert.Contains(t, string(payload), `"student"`)
	assert.NotContains(t, string(payload), `"alumni"`)
}

func TestNewUserProfiles(t *testing.T) {
	profiles := NewUserProfiles(nil)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)

	profiles = NewUserProfiles([]*models.User{
		{ID: 1, UserType: models.UserTypeStudent},
		{ID: 2, UserType: models.UserTypeAlumni},
	})
	assert.Len(t, profiles, 2)
	assert.Equal(t, int64(1), profiles[0].ID)
}
