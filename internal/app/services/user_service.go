package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Anurg29/Aluminiconnect/internal/app/models"
	"github.com/Anurg29/Aluminiconnect/internal/app/models/dto"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/apperrors"
)

// UserService defines the interface for the member directory
type UserService interface {
	ListAlumni(ctx context.Context, filter *dto.AlumniFilter) (*dto.AlumniListResponse, error)
	ListStudents(ctx context.Context, filter *dto.StudentFilter) (*dto.StudentListResponse, error)
	GetUser(ctx context.Context, id int64) (*dto.UserProfile, error)
	ListDepartments(ctx context.Context) (*dto.DepartmentListResponse, error)
	GetDirectoryStats(ctx context.Context) (*dto.DirectoryStatsResponse, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo UserStore
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserStore, logger zerolog.Logger) UserService {
	return &userServiceImpl{userRepo: userRepo, logger: logger}
}

// ListAlumni lists verified, active alumni matching the filters
func (s *userServiceImpl) ListAlumni(ctx context.Context, filter *dto.AlumniFilter) (*dto.AlumniListResponse, error) {
	alumni, err := s.userRepo.ListAlumni(ctx, filter.Department, filter.Company, filter.Search, filter.PassingYear)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list alumni")
		return nil, fmt.Errorf("error listing alumni: %w", err)
	}

	profiles := dto.NewUserProfiles(alumni)
	return &dto.AlumniListResponse{Count: len(profiles), Alumni: profiles}, nil
}

// ListStudents lists verified, active students matching the filters
func (s *userServiceImpl) ListStudents(ctx context.Context, filter *dto.StudentFilter) (*dto.StudentListResponse, error) {
	students, err := s.userRepo.ListStudents(ctx, filter.Department, filter.Search, filter.Year)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list students")
		return nil, fmt.Errorf("error listing students: %w", err)
	}

	profiles := dto.NewUserProfiles(students)
	return &dto.StudentListResponse{Count: len(profiles), Students: profiles}, nil
}

// GetUser returns one member's public profile. Unverified or
// deactivated accounts are not visible in the directory.
func (s *userServiceImpl) GetUser(ctx context.Context, id int64) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsVerified || !user.IsActive {
		return nil, apperrors.NewForbiddenError("This profile is not available")
	}
	return dto.NewUserProfile(user), nil
}

// ListDepartments lists the distinct departments of visible members
func (s *userServiceImpl) ListDepartments(ctx context.Context) (*dto.DepartmentListResponse, error) {
	departments, err := s.userRepo.DistinctDepartments(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list departments")
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	if departments == nil {
		departments = []string{}
	}
	return &dto.DepartmentListResponse{Departments: departments}, nil
}

// GetDirectoryStats counts the visible population by role
func (s *userServiceImpl) GetDirectoryStats(ctx context.Context) (*dto.DirectoryStatsResponse, error) {
	alumni, err := s.userRepo.CountDirectory(ctx, models.UserTypeAlumni)
	if err != nil {
		return nil, fmt.Errorf("error counting alumni: %w", err)
	}
	students, err := s.userRepo.CountDirectory(ctx, models.UserTypeStudent)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	return &dto.DirectoryStatsResponse{
		TotalAlumni:   alumni,
		TotalStudents: students,
		TotalUsers:    alumni + students,
	}, nil
}
