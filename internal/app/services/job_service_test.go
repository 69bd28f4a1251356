package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	appauth "github.com/Anurg29/Aluminiconnect/internal/app/auth"
	"github.com/Anurg29/Aluminiconnect/internal/app/models"
	"github.com/Anurg29/Aluminiconnect/internal/app/models/dto"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/apperrors"
)

func newJobService(jobRepo JobStore, appRepo ApplicationStore, userRepo UserStore) JobService {
	authz := appauth.NewAuthorizationService([]string{"admin@alumniconnect.com"})
	return NewJobService(jobRepo, appRepo, userRepo, authz, zerolog.Nop())
}

func TestJobService_CreateJob(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		mockJobs := new(MockJobStore)
		mockJobs.On("Create", mock.Anything, mock.MatchedBy(func(j *models.Job) bool {
			return j.AlumniID == 9 && j.IsActive && j.JobType == models.JobTypeFullTime
		})).Return(nil)

		mockUsers := new(MockUserStore)
		mockUsers.On("GetByID", mock.Anything, int64(9)).
			Return(&models.User{ID: 9, FullName: "Priya Sharma"}, nil)

		service := newJobService(mockJobs, new(MockApplicationStore), mockUsers)
		job, err := service.CreateJob(context.Background(), 9, &dto.CreateJobRequest{
			Title:       "Backend Engineer",
			Company:     "Acme Corp",
			JobType:     "full-time",
			Description: "Build APIs",
		})

		assert.NoError(t, err)
		assert.True(t, job.IsActive)
		assert.Equal(t, "Priya Sharma", job.AlumniName)
		mockJobs.AssertExpectations(t)
	})

	t.Run("unknown job type", func(t *testing.T) {
		service := newJobService(new(MockJobStore), new(MockApplicationStore), new(MockUserStore))
		job, err := service.CreateJob(context.Background(), 9, &dto.CreateJobRequest{
			Title:       "Backend Engineer",
			Company:     "Acme Corp",
			JobType:     "freelance",
			Description: "Build APIs",
		})

		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
		assert.Nil(t, job)
	})

	t.Run("bad deadline format", func(t *testing.T) {
		service := newJobService(new(MockJobStore), new(MockApplicationStore), new(MockUserStore))
		_, err := service.CreateJob(context.Background(), 9, &dto.CreateJobRequest{
			Title:               "Backend Engineer",
			Company:             "Acme Corp",
			JobType:             "full-time",
			Description:         "Build APIs",
			ApplicationDeadline: strPtr("next friday"),
		})

		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})

	t.Run("date-only deadline accepted", func(t *testing.T) {
		mockJobs := new(MockJobStore)
		mockJobs.On("Create", mock.Anything, mock.MatchedBy(func(j *models.Job) bool {
			return j.ApplicationDeadline != nil
		})).Return(nil)
		mockUsers := new(MockUserStore)
		mockUsers.On("GetByID", mock.Anything, int64(9)).Return(&models.User{ID: 9}, nil)

		service := newJobService(mockJobs, new(MockApplicationStore), mockUsers)
		_, err := service.CreateJob(context.Background(), 9, &dto.CreateJobRequest{
			Title:               "Backend Engineer",
			Company:             "Acme Corp",
			JobType:             "full-time",
			Description:         "Build APIs",
			ApplicationDeadline: strPtr("2026-12-31"),
		})

		assert.NoError(t, err)
		mockJobs.AssertExpectations(t)
	})
}

func TestJobService_UpdateJob_Ownership(t *testing.T) {
	job := &models.Job{ID: 11, AlumniID: 9, Title: "Backend Engineer", IsActive: true}

	t.Run("non-owner is refused", func(t *testing.T) {
		mockJobs := new(MockJobStore)
		mockJobs.On("GetByID", mock.Anything, int64(11)).Return(job, nil)

		service := newJobService(mockJobs, new(MockApplicationStore), new(MockUserStore))
		updated, err := service.UpdateJob(context.Background(), 42, 11, &dto.UpdateJobRequest{
			Title: strPtr("Stolen posting"),
		})

		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		assert.Nil(t, updated)
	})

	t.Run("owner applies a partial update", func(t *testing.T) {
		owned := *job
		mockJobs := new(MockJobStore)
		mockJobs.On("GetByID", mock.Anything, int64(11)).Return(&owned, nil)
		mockJobs.On("Update", mock.Anything, mock.MatchedBy(func(j *models.Job) bool {
			return j.Title == "Senior Backend Engineer" && !j.IsActive
		})).Return(nil)

		service := newJobService(mockJobs, new(MockApplicationStore), new(MockUserStore))
		updated, err := service.UpdateJob(context.Background(), 9, 11, &dto.UpdateJobRequest{
			Title:    strPtr("Senior Backend Engineer"),
			IsActive: boolPtr(false),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Senior Backend Engineer", updated.Title)
		mockJobs.AssertExpectations(t)
	})
}

func TestJobService_Apply(t *testing.T) {
	activeJob := func() *models.Job {
		return &models.Job{ID: 11, AlumniID: 9, Title: "Backend Engineer", IsActive: true}
	}

	t.Run("successful application", func(t *testing.T) {
		mockJobs := new(MockJobStore)
		mockJobs.On("GetByID", mock.Anything, int64(11)).Return(activeJob(), nil)

		mockApps := new(MockApplicationStore)
		mockApps.On("Exists", mock.Anything, int64(11), int64(3)).Return(false, nil)
		mockApps.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Application) bool {
			return a.JobID == 11 && a.StudentID == 3 && a.Status == models.ApplicationPending
		})).Return(nil)

		service := newJobService(mockJobs, mockApps, new(MockUserStore))
		application, err := service.Apply(context.Background(), 3, 11, &dto.ApplyRequest{
			CoverLetter: strPtr("I am interested"),
		})

		assert.NoError(t, err)
		assert.Equal(t, models.ApplicationPending, application.Status)
		assert.Equal(t, "Backend Engineer", application.JobTitle)
		mockApps.AssertExpectations(t)
	})

	t.Run("inactive job reads as not found", func(t *testing.T) {
		job := activeJob()
		job.IsActive = false
		mockJobs := new(MockJobStore)
		mockJobs.On("GetByID", mock.Anything, int64(11)).Return(job, nil)

		service := newJobService(mockJobs, new(MockApplicationStore), new(MockUserStore))
		application, err := service.Apply(context.Background(), 3, 11, &dto.ApplyRequest{})

		assert.ErrorIs(t, err, apperrors.ErrJobInactive)
		assert.Nil(t, application)
	})

	t.Run("double apply is rejected", func(t *testing.T) {
		mockJobs := new(MockJobStore)
		mockJobs.On("GetByID", mock.Anything, int64(11)).Return(activeJob(), nil)

		mockApps := new(MockApplicationStore)
		mockApps.On("Exists", mock.Anything, int64(11), int64(3)).Return(true, nil)

		service := newJobService(mockJobs, mockApps, new(MockUserStore))
		_, err := service.Apply(context.Background(), 3, 11, &dto.ApplyRequest{})

		assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
	})
}

func TestJobService_ListJobApplications_OwnerOnly(t *testing.T) {
	job := &models.Job{ID: 11, AlumniID: 9}

	mockJobs := new(MockJobStore)
	mockJobs.On("GetByID", mock.Anything, int64(11)).Return(job, nil)

	service := newJobService(mockJobs, new(MockApplicationStore), new(MockUserStore))
	resp, err := service.ListJobApplications(context.Background(), 42, 11)

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Nil(t, resp)
}

func TestJobService_UpdateApplicationStatus(t *testing.T) {
	application := func() *models.Application {
		return &models.Application{ID: 21, JobID: 11, StudentID: 3, Status: models.ApplicationPending}
	}
	job := &models.Job{ID: 11, AlumniID: 9}

	t.Run("owner moves the status", func(t *testing.T) {
		mockApps := new(MockApplicationStore)
		mockApps.On("GetByID", mock.Anything, int64(21)).Return(application(), nil)
		mockApps.On("UpdateStatus", mock.Anything, int64(21), models.ApplicationShortlisted).Return(nil)

		mockJobs := new(MockJobStore)
		mockJobs.On("GetByID", mock.Anything, int64(11)).Return(job, nil)

		service := newJobService(mockJobs, mockApps, new(MockUserStore))
		updated, err := service.UpdateApplicationStatus(context.Background(), 9, 21,
			&dto.UpdateApplicationStatusRequest{Status: "shortlisted"})

		assert.NoError(t, err)
		assert.Equal(t, models.ApplicationShortlisted, updated.Status)
		mockApps.AssertExpectations(t)
	})

	t.Run("unknown status label", func(t *testing.T) {
		service := newJobService(new(MockJobStore), new(MockApplicationStore), new(MockUserStore))
		_, err := service.UpdateApplicationStatus(context.Background(), 9, 21,
			&dto.UpdateApplicationStatusRequest{Status: "hired"})

		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		mockApps := new(MockApplicationStore)
		mockApps.On("GetByID", mock.Anything, int64(21)).Return(application(), nil)

		mockJobs := new(MockJobStore)
		mockJobs.On("GetByID", mock.Anything, int64(11)).Return(job, nil)

		service := newJobService(mockJobs, mockApps, new(MockUserStore))
		_, err := service.UpdateApplicationStatus(context.Background(), 42, 21,
			&dto.UpdateApplicationStatusRequest{Status: "reviewed"})

		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}

func boolPtr(b bool) *bool { return &b }

func TestJobService_EmptyListsSerializeAsArrays(t *testing.T) {
	t.Run("no matching jobs", func(t *testing.T) {
		mockJobs := new(MockJobStore)
		mockJobs.On("List", mock.Anything, "", "", "", "").Return(nil, nil)

		service := newJobService(mockJobs, new(MockApplicationStore), new(MockUserStore))
		resp, err := service.ListJobs(context.Background(), &dto.JobFilter{})

		assert.NoError(t, err)
		assert.Equal(t, 0, resp.Count)
		assert.NotNil(t, resp.Jobs)

		payload, err := json.Marshal(resp)
		assert.NoError(t, err)
		assert.Contains(t, string(payload), `"jobs":[]`)
	})

	t.Run("alumnus with no postings", func(t *testing.T) {
		mockJobs := new(MockJobStore)
		mockJobs.On("ListByAlumni", mock.Anything, int64(9)).Return(nil, nil)

		service := newJobService(mockJobs, new(MockApplicationStore), new(MockUserStore))
		resp, err := service.ListMyJobs(context.Background(), 9)

		assert.NoError(t, err)
		assert.NotNil(t, resp.Jobs)
	})

	t.Run("student with no applications", func(t *testing.T) {
		mockApps := new(MockApplicationStore)
		mockApps.On("ListByStudent", mock.Anything, int64(3)).Return(nil, nil)

		service := newJobService(new(MockJobStore), mockApps, new(MockUserStore))
		resp, err := service.ListMyApplications(context.Background(), 3)

		assert.NoError(t, err)
		assert.NotNil(t, resp.Applications)

		payload, err := json.Marshal(resp)
		assert.NoError(t, err)
		assert.Contains(t, string(payload), `"applications":[]`)
	})
}
