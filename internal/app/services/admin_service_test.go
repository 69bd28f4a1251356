package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	appauth "github.com/Anurg29/Aluminiconnect/internal/app/auth"
	"github.com/Anurg29/Aluminiconnect/internal/app/models"
	"github.com/Anurg29/Aluminiconnect/internal/app/repositories"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/apperrors"
)

type adminServiceMocks struct {
	users    *MockUserStore
	jobs     *MockJobStore
	apps     *MockApplicationStore
	messages *MockMessageStore
}

func newAdminService(m *adminServiceMocks) AdminService {
	authz := appauth.NewAuthorizationService([]string{"admin@alumniconnect.com"})
	return NewAdminService(m.users, m.jobs, m.apps, m.messages, authz, zerolog.Nop())
}

func emptyAdminMocks() *adminServiceMocks {
	return &adminServiceMocks{
		users:    new(MockUserStore),
		jobs:     new(MockJobStore),
		apps:     new(MockApplicationStore),
		messages: new(MockMessageStore),
	}
}

func TestAdminService_VerifyUser(t *testing.T) {
	m := emptyAdminMocks()
	m.users.On("GetByID", mock.Anything, int64(5)).
		Return(&models.User{ID: 5, UserType: models.UserTypeStudent, IsVerified: false, IsActive: true}, nil)
	m.users.On("SetVerified", mock.Anything, int64(5), true).Return(nil)

	service := newAdminService(m)
	profile, err := service.VerifyUser(context.Background(), 5)

	assert.NoError(t, err)
	assert.True(t, profile.IsVerified)
	m.users.AssertExpectations(t)
}

func TestAdminService_RejectUser(t *testing.T) {
	t.Run("pending user is removed", func(t *testing.T) {
		m := emptyAdminMocks()
		m.users.On("GetByID", mock.Anything, int64(5)).
			Return(&models.User{ID: 5, IsVerified: false}, nil)
		m.users.On("Delete", mock.Anything, int64(5)).Return(nil)

		service := newAdminService(m)
		assert.NoError(t, service.RejectUser(context.Background(), 5))
		m.users.AssertExpectations(t)
	})

	t.Run("verified user cannot be rejected", func(t *testing.T) {
		m := emptyAdminMocks()
		m.users.On("GetByID", mock.Anything, int64(5)).
			Return(&models.User{ID: 5, IsVerified: true}, nil)

		service := newAdminService(m)
		err := service.RejectUser(context.Background(), 5)

		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})

	t.Run("unknown user", func(t *testing.T) {
		m := emptyAdminMocks()
		m.users.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrUserNotFound)

		service := newAdminService(m)
		err := service.RejectUser(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestAdminService_DeactivateUser(t *testing.T) {
	t.Run("regular user is deactivated", func(t *testing.T) {
		m := emptyAdminMocks()
		m.users.On("GetByID", mock.Anything, int64(5)).
			Return(&models.User{ID: 5, Email: "priya@example.com", IsActive: true}, nil)
		m.users.On("SetActive", mock.Anything, int64(5), false).Return(nil)

		service := newAdminService(m)
		profile, err := service.DeactivateUser(context.Background(), 5)

		assert.NoError(t, err)
		assert.False(t, profile.IsActive)
		m.users.AssertExpectations(t)
	})

	t.Run("administrator account is protected", func(t *testing.T) {
		m := emptyAdminMocks()
		m.users.On("GetByID", mock.Anything, int64(1)).
			Return(&models.User{ID: 1, Email: "Admin@AlumniConnect.com", IsActive: true}, nil)

		service := newAdminService(m)
		profile, err := service.DeactivateUser(context.Background(), 1)

		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
		assert.Nil(t, profile)
	})
}

func TestAdminService_DeleteUser_AdminProtected(t *testing.T) {
	m := emptyAdminMocks()
	m.users.On("GetByID", mock.Anything, int64(1)).
		Return(&models.User{ID: 1, Email: "admin@alumniconnect.com"}, nil)

	service := newAdminService(m)
	err := service.DeleteUser(context.Background(), 1)

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestAdminService_GetUserDetail(t *testing.T) {
	t.Run("alumni detail carries job count", func(t *testing.T) {
		m := emptyAdminMocks()
		m.users.On("GetByID", mock.Anything, int64(9)).
			Return(&models.User{ID: 9, UserType: models.UserTypeAlumni}, nil)
		m.jobs.On("CountByAlumni", mock.Anything, int64(9)).Return(int64(4), nil)
		m.messages.On("CountSent", mock.Anything, int64(9)).Return(int64(12), nil)
		m.messages.On("CountReceived", mock.Anything, int64(9)).Return(int64(7), nil)

		service := newAdminService(m)
		detail, err := service.GetUserDetail(context.Background(), 9)

		assert.NoError(t, err)
		assert.NotNil(t, detail.JobsPostedCount)
		assert.Equal(t, int64(4), *detail.JobsPostedCount)
		assert.Nil(t, detail.ApplicationsCount)
		assert.Equal(t, int64(12), detail.MessagesSentCount)
		assert.Equal(t, int64(7), detail.MessagesReceivedCount)
	})

	t.Run("student detail carries application count", func(t *testing.T) {
		m := emptyAdminMocks()
		m.users.On("GetByID", mock.Anything, int64(3)).
			Return(&models.User{ID: 3, UserType: models.UserTypeStudent}, nil)
		m.apps.On("CountByStudent", mock.Anything, int64(3)).Return(int64(2), nil)
		m.messages.On("CountSent", mock.Anything, int64(3)).Return(int64(0), nil)
		m.messages.On("CountReceived", mock.Anything, int64(3)).Return(int64(1), nil)

		service := newAdminService(m)
		detail, err := service.GetUserDetail(context.Background(), 3)

		assert.NoError(t, err)
		assert.Nil(t, detail.JobsPostedCount)
		assert.NotNil(t, detail.ApplicationsCount)
		assert.Equal(t, int64(2), *detail.ApplicationsCount)
	})
}

func TestAdminService_GetStats(t *testing.T) {
	m := emptyAdminMocks()
	m.users.On("CountAll", mock.Anything).Return(&repositories.UserCounts{
		Total:            10,
		Verified:         6,
		Pending:          4,
		Active:           9,
		TotalStudents:    7,
		TotalAlumni:      3,
		VerifiedStudents: 4,
		VerifiedAlumni:   2,
	}, nil)
	m.jobs.On("CountActive", mock.Anything).Return(int64(5), nil)
	m.apps.On("Count", mock.Anything).Return(int64(13), nil)
	m.messages.On("Count", mock.Anything).Return(int64(40), nil)

	service := newAdminService(m)
	stats, err := service.GetStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalUsers)
	assert.Equal(t, int64(4), stats.PendingUsers)
	assert.Equal(t, int64(2), stats.VerifiedAlumni)
	assert.Equal(t, int64(5), stats.ActiveJobs)
	assert.Equal(t, int64(13), stats.TotalApplications)
	assert.Equal(t, int64(40), stats.TotalMessages)
}
