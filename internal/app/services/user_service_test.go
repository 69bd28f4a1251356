package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Anurg29/Aluminiconnect/internal/app/models"
	"github.com/Anurg29/Aluminiconnect/internal/app/models/dto"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/apperrors"
)

func TestUserService_GetUser(t *testing.T) {
	tests := []struct {
		name          string
		user          *models.User
		expectedError error
	}{
		{
			name: "visible profile",
			user: &models.User{ID: 2, FullName: "Rahul Verma", UserType: models.UserTypeStudent, IsVerified: true, IsActive: true},
		},
		{
			name:          "unverified profile is hidden",
			user:          &models.User{ID: 2, IsVerified: false, IsActive: true},
			expectedError: apperrors.ErrPermissionDenied,
		},
		{
			name:          "deactivated profile is hidden",
			user:          &models.User{ID: 2, IsVerified: true, IsActive: false},
			expectedError: apperrors.ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserStore)
			mockRepo.On("GetByID", mock.Anything, int64(2)).Return(tt.user, nil)

			service := NewUserService(mockRepo, zerolog.Nop())
			profile, err := service.GetUser(context.Background(), 2)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, profile)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Rahul Verma", profile.FullName)
			}
		})
	}
}

func TestUserService_ListAlumni(t *testing.T) {
	alumni := []*models.User{
		{ID: 9, FullName: "Priya Sharma", UserType: models.UserTypeAlumni, IsVerified: true, IsActive: true},
	}

	mockRepo := new(MockUserStore)
	mockRepo.On("ListAlumni", mock.Anything, "Computer Science", "", "", intPtr(2019)).Return(alumni, nil)

	service := NewUserService(mockRepo, zerolog.Nop())
	resp, err := service.ListAlumni(context.Background(), &dto.AlumniFilter{
		Department:  "Computer Science",
		PassingYear: intPtr(2019),
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Priya Sharma", resp.Alumni[0].FullName)
	mockRepo.AssertExpectations(t)
}

func TestUserService_ListDepartments_Empty(t *testing.T) {
	mockRepo := new(MockUserStore)
	mockRepo.On("DistinctDepartments", mock.Anything).Return(nil, nil)

	service := NewUserService(mockRepo, zerolog.Nop())
	resp, err := service.ListDepartments(context.Background())

	assert.NoError(t, err)
	// Absent rows serialize as an empty list, not null
	assert.NotNil(t, resp.Departments)
	assert.Empty(t, resp.Departments)
}

func TestUserService_GetDirectoryStats(t *testing.T) {
	mockRepo := new(MockUserStore)
	mockRepo.On("CountDirectory", mock.Anything, models.UserTypeAlumni).Return(int64(3), nil)
	mockRepo.On("CountDirectory", mock.Anything, models.UserTypeStudent).Return(int64(7), nil)

	service := NewUserService(mockRepo, zerolog.Nop())
	stats, err := service.GetDirectoryStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalAlumni)
	assert.Equal(t, int64(7), stats.TotalStudents)
	assert.Equal(t, int64(10), stats.TotalUsers)
}
