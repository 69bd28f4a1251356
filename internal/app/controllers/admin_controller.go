package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Anurg29/Aluminiconnect/internal/app/models/dto"
	"github.com/Anurg29/Aluminiconnect/internal/app/services"
	"github.com/Anurg29/Aluminiconnect/internal/middleware"
)

// AdminController handles the administration backend. Every route is
// mounted behind the admin allow-list middleware.
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new admin controller
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// ListPendingUsers lists accounts awaiting verification
// @Summary List pending users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param user_type query string false "Filter by role"
// @Success 200 {object} dto.AdminUserListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/pending-users [get]
func (c *AdminController) ListPendingUsers(ctx *gin.Context) {
	resp, err := c.adminService.ListPendingUsers(ctx.Request.Context(), ctx.Query("user_type"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListUsers lists every account
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param user_type query string false "Filter by role"
// @Param is_verified query bool false "Filter by verification"
// @Param is_active query bool false "Filter by activation"
// @Param search query string false "Name, email or college ID substring"
// @Success 200 {object} dto.AdminUserListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	var filter dto.AdminUserFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.adminService.ListUsers(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetUserDetail returns one account with activity counters
// @Summary Get user detail
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.AdminUserDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/user/{id} [get]
func (c *AdminController) GetUserDetail(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.adminService.GetUserDetail(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// VerifyUser approves a pending account
// @Summary Verify a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.AdminUserActionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/verify-user/{id} [put]
func (c *AdminController) VerifyUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	profile, err := c.adminService.VerifyUser(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminUserActionResponse{Message: "User verified", User: profile})
}

// RejectUser deletes a never-verified account
// @Summary Reject a pending user
// @Description Only accounts that were never verified can be rejected.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/reject-user/{id} [delete]
func (c *AdminController) RejectUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.RejectUser(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User rejected and removed"})
}

// ActivateUser re-enables a deactivated account
// @Summary Activate a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.AdminUserActionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/activate-user/{id} [put]
func (c *AdminController) ActivateUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	profile, err := c.adminService.ActivateUser(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminUserActionResponse{Message: "User activated", User: profile})
}

// DeactivateUser blocks an account from logging in
// @Summary Deactivate a user
// @Description Administrator accounts cannot be deactivated.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.AdminUserActionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/deactivate-user/{id} [put]
func (c *AdminController) DeactivateUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	profile, err := c.adminService.DeactivateUser(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminUserActionResponse{Message: "User deactivated", User: profile})
}

// DeleteUser removes an account entirely
// @Summary Delete a user
// @Description Administrator accounts cannot be deleted. Jobs, applications and messages cascade.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/delete-user/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.DeleteUser(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted"})
}

// GetStats builds the admin dashboard counters
// @Summary Platform statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AdminStatsResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/stats [get]
func (c *AdminController) GetStats(ctx *gin.Context) {
	resp, err := c.adminService.GetStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
