package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Anurg29/Aluminiconnect/internal/app/models/dto"
	"github.com/Anurg29/Aluminiconnect/internal/app/services"
	"github.com/Anurg29/Aluminiconnect/internal/middleware"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/auth"
)

// AuthController handles registration, login, token refresh and the
// caller's own profile
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register creates a new account pending admin verification
// @Summary Register a new account
// @Description Creates a student or alumni account. The account stays unverified until an administrator approves it.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration payload"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	profile, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "Registration successful. Your account is pending admin verification.",
		User:    profile,
	})
}

// Login authenticates credentials and issues a token pair
// @Summary Log in
// @Description Authenticates email and password. Unverified accounts get 403 until approved; deactivated accounts get 403.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Refresh exchanges a refresh token for a new access token
// @Summary Refresh the access token
// @Description Requires a bearer token of the refresh type. Returns a new access token only.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.RefreshResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	tokenString, err := auth.ExtractBearerToken(ctx.GetHeader("Authorization"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.authService.RefreshAccessToken(ctx.Request.Context(), tokenString)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetProfile returns the caller's own profile
// @Summary Get own profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserProfile
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	profile, err := c.authService.GetProfile(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// UpdateProfile applies a partial self-update
// @Summary Update own profile
// @Description Applies the role's editable fields; payload fields outside the role's allow-list are ignored.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.UpdateProfileResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/update-profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	profile, err := c.authService.UpdateProfile(ctx.Request.Context(), middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateProfileResponse{
		Message: "Profile updated successfully",
		User:    profile,
	})
}

// ChangePassword verifies the current credential and stores a new one
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/change-password [post]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.authService.ChangePassword(ctx.Request.Context(), middleware.GetUserID(ctx), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Password changed successfully"})
}

// UploadAvatar stores a new profile picture
// @Summary Upload profile picture
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file (png, jpg, jpeg, gif, webp)"
// @Success 200 {object} dto.AvatarResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/upload-avatar [post]
func (c *AuthController) UploadAvatar(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("A file upload named 'file' is required"))
		return
	}
	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Profile picture must be an image"))
		return
	}

	path, err := c.authService.UploadAvatar(ctx.Request.Context(), middleware.GetUserID(ctx), fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AvatarResponse{
		Message:        "Profile picture updated",
		ProfilePicture: path,
	})
}
