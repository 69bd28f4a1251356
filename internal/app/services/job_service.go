package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Anurg29/Aluminiconnect/internal/app/auth"
	"github.com/Anurg29/Aluminiconnect/internal/app/models"
	"github.com/Anurg29/Aluminiconnect/internal/app/models/dto"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/apperrors"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/helpers"
)

// JobService defines the interface for the job board
type JobService interface {
	CreateJob(ctx context.Context, alumniID int64, req *dto.CreateJobRequest) (*models.Job, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	ListJobs(ctx context.Context, filter *dto.JobFilter) (*dto.JobListResponse, error)
	ListMyJobs(ctx context.Context, alumniID int64) (*dto.JobListResponse, error)
	UpdateJob(ctx context.Context, actorID, jobID int64, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, actorID, jobID int64) error
	Apply(ctx context.Context, studentID, jobID int64, req *dto.ApplyRequest) (*models.Application, error)
	ListJobApplications(ctx context.Context, actorID, jobID int64) (*dto.ApplicationListResponse, error)
	ListMyApplications(ctx context.Context, studentID int64) (*dto.ApplicationListResponse, error)
	UpdateApplicationStatus(ctx context.Context, actorID, applicationID int64, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}

// jobServiceImpl implements JobService
type jobServiceImpl struct {
	jobRepo  JobStore
	appRepo  ApplicationStore
	userRepo UserStore
	authz    *auth.AuthorizationService
	logger   zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(
	jobRepo JobStore,
	appRepo ApplicationStore,
	userRepo UserStore,
	authz *auth.AuthorizationService,
	logger zerolog.Logger,
) JobService {
	return &jobServiceImpl{
		jobRepo:  jobRepo,
		appRepo:  appRepo,
		userRepo: userRepo,
		authz:    authz,
		logger:   logger,
	}
}

func parseDeadline(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := helpers.ParseDeadline(*value)
	if err != nil {
		return nil, apperrors.NewBadRequestError("application_deadline must be an RFC 3339 timestamp or a YYYY-MM-DD date")
	}
	return &t, nil
}

// CreateJob creates an active posting owned by the calling alumnus
func (s *jobServiceImpl) CreateJob(ctx context.Context, alumniID int64, req *dto.CreateJobRequest) (*models.Job, error) {
	jobType := models.JobType(req.JobType)
	if !jobType.IsValid() {
		return nil, apperrors.NewBadRequestError("job_type must be one of: full-time, part-time, internship, contract")
	}

	deadline, err := parseDeadline(req.ApplicationDeadline)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		AlumniID:            alumniID,
		Title:               req.Title,
		Company:             req.Company,
		Location:            req.Location,
		JobType:             jobType,
		Description:         req.Description,
		Requirements:        req.Requirements,
		SalaryRange:         req.SalaryRange,
		ApplicationDeadline: deadline,
		IsActive:            true,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		s.logger.Error().Err(err).Int64("alumniID", alumniID).Msg("Failed to create job")
		return nil, err
	}

	s.logger.Info().Int64("jobID", job.ID).Int64("alumniID", alumniID).Msg("Job posted")

	// Populate the denormalized poster name on the create response
	if poster, err := s.userRepo.GetByID(ctx, alumniID); err == nil {
		job.AlumniName = poster.FullName
	}

	return job, nil
}

// GetJob returns one posting with its application count
func (s *jobServiceImpl) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

// ListJobs lists active postings matching the filters
func (s *jobServiceImpl) ListJobs(ctx context.Context, filter *dto.JobFilter) (*dto.JobListResponse, error) {
	jobs, err := s.jobRepo.List(ctx, filter.JobType, filter.Company, filter.Location, filter.Search)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list jobs")
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	if jobs == nil {
		// An empty result serializes as [] rather than null
		jobs = []*models.Job{}
	}

	return &dto.JobListResponse{Count: len(jobs), Jobs: jobs}, nil
}

// ListMyJobs lists every posting of the calling alumnus
func (s *jobServiceImpl) ListMyJobs(ctx context.Context, alumniID int64) (*dto.JobListResponse, error) {
	jobs, err := s.jobRepo.ListByAlumni(ctx, alumniID)
	if err != nil {
		s.logger.Error().Err(err).Int64("alumniID", alumniID).Msg("Failed to list own jobs")
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	if jobs == nil {
		jobs = []*models.Job{}
	}

	return &dto.JobListResponse{Count: len(jobs), Jobs: jobs}, nil
}

// UpdateJob applies a partial update to an owned posting
func (s *jobServiceImpl) UpdateJob(ctx context.Context, actorID, jobID int64, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !s.authz.OwnsJob(actorID, job) {
		return nil, apperrors.NewForbiddenError("You can only update your own job postings")
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = req.Location
	}
	if req.JobType != nil {
		jobType := models.JobType(*req.JobType)
		if !jobType.IsValid() {
			return nil, apperrors.NewBadRequestError("job_type must be one of: full-time, part-time, internship, contract")
		}
		job.JobType = jobType
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = req.Requirements
	}
	if req.SalaryRange != nil {
		job.SalaryRange = req.SalaryRange
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
	if req.ApplicationDeadline != nil {
		deadline, err := parseDeadline(req.ApplicationDeadline)
		if err != nil {
			return nil, err
		}
		job.ApplicationDeadline = deadline
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		s.logger.Error().Err(err).Int64("jobID", jobID).Msg("Failed to update job")
		return nil, err
	}

	return job, nil
}

// DeleteJob removes an owned posting and its applications
func (s *jobServiceImpl) DeleteJob(ctx context.Context, actorID, jobID int64) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	if !s.authz.OwnsJob(actorID, job) {
		return apperrors.NewForbiddenError("You can only delete your own job postings")
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		s.logger.Error().Err(err).Int64("jobID", jobID).Msg("Failed to delete job")
		return err
	}

	s.logger.Info().Int64("jobID", jobID).Int64("alumniID", actorID).Msg("Job deleted")
	return nil
}

// Apply submits a student's application to an active posting. The
// duplicate check here is advisory; the storage unique pair constraint
// is what actually prevents a double apply under concurrency.
func (s *jobServiceImpl) Apply(ctx context.Context, studentID, jobID int64, req *dto.ApplyRequest) (*models.Application, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		return nil, apperrors.ErrJobInactive
	}

	if exists, err := s.appRepo.Exists(ctx, jobID, studentID); err != nil {
		return nil, fmt.Errorf("error checking application: %w", err)
	} else if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	application := &models.Application{
		JobID:       jobID,
		StudentID:   studentID,
		CoverLetter: req.CoverLetter,
		ResumePath:  req.ResumePath,
		Status:      models.ApplicationPending,
	}

	if err := s.appRepo.Create(ctx, application); err != nil {
		s.logger.Error().Err(err).Int64("jobID", jobID).Int64("studentID", studentID).Msg("Failed to create application")
		return nil, err
	}

	application.JobTitle = job.Title

	s.logger.Info().Int64("applicationID", application.ID).Int64("jobID", jobID).Msg("Application submitted")
	return application, nil
}

// ListJobApplications lists the applications a posting has received.
// Only the posting's owner may see them.
func (s *jobServiceImpl) ListJobApplications(ctx context.Context, actorID, jobID int64) (*dto.ApplicationListResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !s.authz.OwnsJob(actorID, job) {
		return nil, apperrors.NewForbiddenError("You can only view applications to your own job postings")
	}

	applications, err := s.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		s.logger.Error().Err(err).Int64("jobID", jobID).Msg("Failed to list applications")
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	if applications == nil {
		applications = []*models.Application{}
	}

	return &dto.ApplicationListResponse{Count: len(applications), Applications: applications}, nil
}

// ListMyApplications lists the calling student's applications
func (s *jobServiceImpl) ListMyApplications(ctx context.Context, studentID int64) (*dto.ApplicationListResponse, error) {
	applications, err := s.appRepo.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error().Err(err).Int64("studentID", studentID).Msg("Failed to list applications")
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	if applications == nil {
		applications = []*models.Application{}
	}

	return &dto.ApplicationListResponse{Count: len(applications), Applications: applications}, nil
}

// UpdateApplicationStatus moves an application through review. Only
// the owner of the parent posting may do it, and only to a known
// status label.
func (s *jobServiceImpl) UpdateApplicationStatus(ctx context.Context, actorID, applicationID int64, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	status := models.ApplicationStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.NewBadRequestError("status must be one of: pending, reviewed, shortlisted, rejected, accepted")
	}

	application, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, err
	}

	if !s.authz.OwnsJob(actorID, job) {
		return nil, apperrors.NewForbiddenError("You can only review applications to your own job postings")
	}

	if err := s.appRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		s.logger.Error().Err(err).Int64("applicationID", applicationID).Msg("Failed to update application status")
		return nil, err
	}

	application.Status = status
	return application, nil
}
