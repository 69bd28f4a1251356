package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Anurg29/Aluminiconnect/internal/app/models/dto"
	"github.com/Anurg29/Aluminiconnect/internal/app/services"
	"github.com/Anurg29/Aluminiconnect/internal/middleware"
)

// UserController handles the member directory
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new user controller
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// ListAlumni lists the alumni directory
// @Summary List alumni
// @Description Lists verified, active alumni. All filters are conjunctive; text filters match case-insensitive substrings.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param department query string false "Exact department"
// @Param company query string false "Company substring"
// @Param passing_year query int false "Exact passing year"
// @Param search query string false "Name, company or position substring"
// @Success 200 {object} dto.AlumniListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/alumni [get]
func (c *UserController) ListAlumni(ctx *gin.Context) {
	var filter dto.AlumniFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.userService.ListAlumni(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListStudents lists the student directory
// @Summary List students
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param department query string false "Exact department"
// @Param year query int false "Exact current year"
// @Param search query string false "Name substring"
// @Success 200 {object} dto.StudentListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/students [get]
func (c *UserController) ListStudents(ctx *gin.Context) {
	var filter dto.StudentFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.userService.ListStudents(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetUser returns one member's profile
// @Summary Get a member profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserProfile
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("User ID must be a number"))
		return
	}

	profile, err := c.userService.GetUser(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// ListDepartments lists the distinct departments of visible members
// @Summary List departments
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DepartmentListResponse
// @Router /users/departments [get]
func (c *UserController) ListDepartments(ctx *gin.Context) {
	resp, err := c.userService.ListDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetDirectoryStats returns the visible population counts
// @Summary Directory statistics
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DirectoryStatsResponse
// @Router /users/stats [get]
func (c *UserController) GetDirectoryStats(ctx *gin.Context) {
	resp, err := c.userService.GetDirectoryStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
