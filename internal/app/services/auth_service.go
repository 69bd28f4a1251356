package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Anurg29/Aluminiconnect/internal/app/models"
	"github.com/Anurg29/Aluminiconnect/internal/app/models/dto"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/apperrors"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/auth"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/filestorage"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/validation"
)

// UploadLimits bounds what UploadAvatar accepts. The values come from
// the upload section of the configuration.
type UploadLimits struct {
	MaxSizeBytes      int64
	AllowedExtensions []string
}

// AuthService defines the interface for account lifecycle operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserProfile, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error)
	GetProfile(ctx context.Context, userID int64) (*dto.UserProfile, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserProfile, error)
	ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error
	UploadAvatar(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (string, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo    UserStore
	jwtService  *auth.JWTService
	fileStorage filestorage.FileStorage
	uploads     UploadLimits
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo UserStore,
	jwtService *auth.JWTService,
	fileStorage filestorage.FileStorage,
	uploads UploadLimits,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		jwtService:  jwtService,
		fileStorage: fileStorage,
		uploads:     uploads,
		logger:      logger,
	}
}

// Register creates a new unverified account. Duplicate login or
// college emails are rejected before the insert; the storage unique
// constraints back the same rule up under concurrency.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserProfile, error) {
	userType, ok := req.ParsedUserType()
	if !ok {
		return nil, apperrors.NewBadRequestError("user_type must be 'student' or 'alumni'")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	collegeEmail := strings.ToLower(strings.TrimSpace(req.CollegeEmail))

	if !validation.ValidEmail(email) {
		return nil, apperrors.NewBadRequestError("Invalid email address")
	}
	if !validation.ValidEmail(collegeEmail) {
		return nil, apperrors.NewBadRequestError("Invalid college email address")
	}
	if !validation.ValidPassword(req.Password) {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("Password must be at least %d characters", validation.PasswordMinLength))
	}

	if exists, err := s.userRepo.EmailExists(ctx, email); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("Failed to check email")
		return nil, fmt.Errorf("error checking email: %w", err)
	} else if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if exists, err := s.userRepo.CollegeEmailExists(ctx, collegeEmail); err != nil {
		s.logger.Error().Err(err).Str("collegeEmail", collegeEmail).Msg("Failed to check college email")
		return nil, fmt.Errorf("error checking college email: %w", err)
	} else if exists {
		return nil, apperrors.ErrCollegeEmailAlreadyExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: passwordHash,
		CollegeID:    strings.TrimSpace(req.CollegeID),
		CollegeEmail: collegeEmail,
		Department:   strings.TrimSpace(req.Department),
		UserType:     userType,
		IsVerified:   false,
		IsActive:     true,
	}

	// Only the fields of the requested role variant are stored
	switch userType {
	case models.UserTypeAlumni:
		user.PassingYear = req.PassingYear
		user.CurrentCompany = req.CurrentCompany
		user.CurrentPosition = req.CurrentPosition
		user.Bio = req.Bio
		user.LinkedinURL = req.LinkedinURL
		user.GithubURL = req.GithubURL
	case models.UserTypeStudent:
		user.ExpectedPassingYear = req.ExpectedPassingYear
		user.CurrentYear = req.CurrentYear
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("Failed to create user")
		return nil, err
	}

	s.logger.Info().
		Int64("userID", user.ID).
		Str("userType", string(userType)).
		Msg("User registered, pending admin verification")

	return dto.NewUserProfile(user), nil
}

// Login authenticates credentials and issues a token pair. Bad
// credentials answer identically whether the email exists or not.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, apperrors.ErrAccountNotVerified
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDeactivated
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate tokens")
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User logged in")

	return &dto.LoginResponse{
		Message:      "Login successful",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserProfile(user),
	}, nil
}

// RefreshAccessToken exchanges a valid refresh token for a new access
// token. The account state is re-checked so a deactivated user cannot
// keep minting access tokens.
func (s *authServiceImpl) RefreshAccessToken(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}

	if !user.IsVerified {
		return nil, apperrors.ErrAccountNotVerified
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDeactivated
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate access token")
		return nil, fmt.Errorf("error generating access token: %w", err)
	}

	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

// GetProfile returns the caller's own profile
func (s *authServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserProfile(user), nil
}

// UpdateProfile applies a partial self-update. Each role has its own
// allow-list of editable fields; payload fields outside it are
// silently ignored.
func (s *authServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil && strings.TrimSpace(*req.FullName) != "" {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Skills != nil {
		user.Skills = req.Skills
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = req.ProfilePicture
	}

	switch {
	case user.IsAlumni():
		if req.CurrentCompany != nil {
			user.CurrentCompany = req.CurrentCompany
		}
		if req.CurrentPosition != nil {
			user.CurrentPosition = req.CurrentPosition
		}
		if req.Bio != nil {
			user.Bio = req.Bio
		}
		if req.LinkedinURL != nil {
			user.LinkedinURL = req.LinkedinURL
		}
		if req.GithubURL != nil {
			user.GithubURL = req.GithubURL
		}
	case user.IsStudent():
		if req.CurrentYear != nil {
			user.CurrentYear = req.CurrentYear
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to update profile")
		return nil, err
	}

	return dto.NewUserProfile(user), nil
}

// ChangePassword verifies the current credential and stores a new hash
func (s *authServiceImpl) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.PasswordHash, req.OldPassword) {
		return apperrors.NewUnauthorizedError("Current password is incorrect")
	}
	if !validation.ValidPassword(req.NewPassword) {
		return apperrors.NewBadRequestError(
			fmt.Sprintf("Password must be at least %d characters", validation.PasswordMinLength))
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to update password")
		return err
	}

	s.logger.Info().Int64("userID", userID).Msg("Password changed")
	return nil
}

// UploadAvatar stores a new profile picture and records its path.
// Size and file type are bounded by the configured upload limits.
func (s *authServiceImpl) UploadAvatar(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > s.uploads.MaxSizeBytes {
		return "", apperrors.NewBadRequestError(
			fmt.Sprintf("File exceeds the %d MB upload limit", s.uploads.MaxSizeBytes>>20))
	}
	if !validation.AllowedExtension(fileHeader.Filename, s.uploads.AllowedExtensions) {
		return "", apperrors.NewBadRequestError(
			"File type must be one of: " + strings.Join(s.uploads.AllowedExtensions, ", "))
	}

	path, err := s.fileStorage.SaveFileWithPath(fileHeader, "avatars")
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to store avatar")
		return "", fmt.Errorf("error storing avatar: %w", err)
	}

	if err := s.userRepo.UpdateProfilePicture(ctx, userID, path); err != nil {
		_ = s.fileStorage.DeleteFile(path)
		return "", err
	}

	return path, nil
}
