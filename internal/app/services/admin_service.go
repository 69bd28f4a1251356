package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Anurg29/Aluminiconnect/internal/app/auth"
	"github.com/Anurg29/Aluminiconnect/internal/app/models/dto"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/apperrors"
)

// AdminService defines the interface for the administration backend.
// Every operation here sits behind the admin allow-list middleware;
// the service enforces the per-target rules on top of that.
type AdminService interface {
	ListPendingUsers(ctx context.Context, userType string) (*dto.AdminUserListResponse, error)
	ListUsers(ctx context.Context, filter *dto.AdminUserFilter) (*dto.AdminUserListResponse, error)
	GetUserDetail(ctx context.Context, userID int64) (*dto.AdminUserDetailResponse, error)
	VerifyUser(ctx context.Context, userID int64) (*dto.UserProfile, error)
	RejectUser(ctx context.Context, userID int64) error
	ActivateUser(ctx context.Context, userID int64) (*dto.UserProfile, error)
	DeactivateUser(ctx context.Context, userID int64) (*dto.UserProfile, error)
	DeleteUser(ctx context.Context, userID int64) error
	GetStats(ctx context.Context) (*dto.AdminStatsResponse, error)
}

// adminServiceImpl implements AdminService
type adminServiceImpl struct {
	userRepo    UserStore
	jobRepo     JobStore
	appRepo     ApplicationStore
	messageRepo MessageStore
	authz       *auth.AuthorizationService
	logger      zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	userRepo UserStore,
	jobRepo JobStore,
	appRepo ApplicationStore,
	messageRepo MessageStore,
	authz *auth.AuthorizationService,
	logger zerolog.Logger,
) AdminService {
	return &adminServiceImpl{
		userRepo:    userRepo,
		jobRepo:     jobRepo,
		appRepo:     appRepo,
		messageRepo: messageRepo,
		authz:       authz,
		logger:      logger,
	}
}

// ListPendingUsers lists unverified accounts awaiting review
func (s *adminServiceImpl) ListPendingUsers(ctx context.Context, userType string) (*dto.AdminUserListResponse, error) {
	users, err := s.userRepo.ListPending(ctx, userType)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list pending users")
		return nil, fmt.Errorf("error listing pending users: %w", err)
	}

	profiles := dto.NewUserProfiles(users)
	return &dto.AdminUserListResponse{Count: len(profiles), Users: profiles}, nil
}

// ListUsers lists every account matching the admin filters
func (s *adminServiceImpl) ListUsers(ctx context.Context, filter *dto.AdminUserFilter) (*dto.AdminUserListResponse, error) {
	users, err := s.userRepo.ListAll(ctx, filter.UserType, filter.IsVerified, filter.IsActive, filter.Search)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list users")
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	profiles := dto.NewUserProfiles(users)
	return &dto.AdminUserListResponse{Count: len(profiles), Users: profiles}, nil
}

// GetUserDetail returns one account with its activity counters
func (s *adminServiceImpl) GetUserDetail(ctx context.Context, userID int64) (*dto.AdminUserDetailResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	detail := &dto.AdminUserDetailResponse{UserProfile: dto.NewUserProfile(user)}

	if user.IsAlumni() {
		jobs, err := s.jobRepo.CountByAlumni(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("error counting jobs: %w", err)
		}
		detail.JobsPostedCount = &jobs
	} else {
		applications, err := s.appRepo.CountByStudent(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("error counting applications: %w", err)
		}
		detail.ApplicationsCount = &applications
	}

	sent, err := s.messageRepo.CountSent(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error counting sent messages: %w", err)
	}
	received, err := s.messageRepo.CountReceived(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error counting received messages: %w", err)
	}
	detail.MessagesSentCount = sent
	detail.MessagesReceivedCount = received

	return detail, nil
}

// VerifyUser approves a pending account
func (s *adminServiceImpl) VerifyUser(ctx context.Context, userID int64) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetVerified(ctx, userID, true); err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to verify user")
		return nil, err
	}
	user.IsVerified = true

	s.logger.Info().Int64("userID", userID).Msg("User verified")
	return dto.NewUserProfile(user), nil
}

// RejectUser deletes an account that was never verified. Verified
// accounts cannot be rejected, only deactivated or deleted.
func (s *adminServiceImpl) RejectUser(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.IsVerified {
		return apperrors.NewBadRequestError("Cannot reject an already verified user")
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to reject user")
		return err
	}

	s.logger.Info().Int64("userID", userID).Msg("Pending user rejected")
	return nil
}

// ActivateUser re-enables a deactivated account
func (s *adminServiceImpl) ActivateUser(ctx context.Context, userID int64) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetActive(ctx, userID, true); err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to activate user")
		return nil, err
	}
	user.IsActive = true

	s.logger.Info().Int64("userID", userID).Msg("User activated")
	return dto.NewUserProfile(user), nil
}

// DeactivateUser blocks an account from logging in without touching
// its data. Administrator accounts cannot be deactivated.
func (s *adminServiceImpl) DeactivateUser(ctx context.Context, userID int64) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.authz.IsAdmin(user.Email) {
		return nil, apperrors.NewBadRequestError("Cannot deactivate an administrator account")
	}

	if err := s.userRepo.SetActive(ctx, userID, false); err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to deactivate user")
		return nil, err
	}
	user.IsActive = false

	s.logger.Info().Int64("userID", userID).Msg("User deactivated")
	return dto.NewUserProfile(user), nil
}

// DeleteUser removes an account and everything that cascades from it.
// Administrator accounts cannot be deleted.
func (s *adminServiceImpl) DeleteUser(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if s.authz.IsAdmin(user.Email) {
		return apperrors.NewBadRequestError("Cannot delete an administrator account")
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to delete user")
		return err
	}

	s.logger.Info().Int64("userID", userID).Msg("User deleted")
	return nil
}

// GetStats builds the admin dashboard counters
func (s *adminServiceImpl) GetStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	counts, err := s.userRepo.CountAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to count users")
		return nil, err
	}

	activeJobs, err := s.jobRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting jobs: %w", err)
	}
	applications, err := s.appRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting applications: %w", err)
	}
	messages, err := s.messageRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting messages: %w", err)
	}

	return &dto.AdminStatsResponse{
		TotalUsers:        counts.Total,
		VerifiedUsers:     counts.Verified,
		PendingUsers:      counts.Pending,
		ActiveUsers:       counts.Active,
		TotalStudents:     counts.TotalStudents,
		TotalAlumni:       counts.TotalAlumni,
		VerifiedStudents:  counts.VerifiedStudents,
		VerifiedAlumni:    counts.VerifiedAlumni,
		ActiveJobs:        activeJobs,
		TotalApplications: applications,
		TotalMessages:     messages,
	}, nil
}
