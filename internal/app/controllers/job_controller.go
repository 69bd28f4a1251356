package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Anurg29/Aluminiconnect/internal/app/models/dto"
	"github.com/Anurg29/Aluminiconnect/internal/app/services"
	"github.com/Anurg29/Aluminiconnect/internal/middleware"
)

// JobController handles the job board and its applications
type JobController struct {
	jobService services.JobService
}

// NewJobController creates a new job controller
func NewJobController(jobService services.JobService) *JobController {
	return &JobController{jobService: jobService}
}

func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(name+" must be a number"))
		return 0, false
	}
	return id, true
}

// ListJobs lists active postings
// @Summary List jobs
// @Description Lists active postings newest first. Filters are conjunctive.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param job_type query string false "Exact job type"
// @Param company query string false "Company substring"
// @Param location query string false "Location substring"
// @Param search query string false "Title, company or description substring"
// @Success 200 {object} dto.JobListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /jobs [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	var filter dto.JobFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.jobService.ListJobs(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// CreateJob creates a posting owned by the calling alumnus
// @Summary Post a job
// @Description Alumni only. The posting starts active.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Posting payload"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	job, err := c.jobService.CreateJob(ctx.Request.Context(), middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.JobResponse{Message: "Job posted successfully", Job: job})
}

// GetJob returns one posting
// @Summary Get a job
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} models.Job
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobs/{id} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	job, err := c.jobService.GetJob(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, job)
}

// ListMyJobs lists the calling alumnus's postings
// @Summary List own postings
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.JobListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /jobs/my-jobs [get]
func (c *JobController) ListMyJobs(ctx *gin.Context) {
	resp, err := c.jobService.ListMyJobs(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// UpdateJob applies a partial update to an owned posting
// @Summary Update a job
// @Description Only the posting's owner may update it.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body dto.UpdateJobRequest true "Fields to update"
// @Success 200 {object} dto.JobResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobs/{id} [put]
func (c *JobController) UpdateJob(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	job, err := c.jobService.UpdateJob(ctx.Request.Context(), middleware.GetUserID(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JobResponse{Message: "Job updated successfully", Job: job})
}

// DeleteJob removes an owned posting
// @Summary Delete a job
// @Description Only the posting's owner may delete it. Applications cascade.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobs/{id} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.jobService.DeleteJob(ctx.Request.Context(), middleware.GetUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Job deleted successfully"})
}

// Apply submits an application to a posting
// @Summary Apply to a job
// @Description Students only. A student can apply to each posting once; the posting must be active.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body dto.ApplyRequest false "Optional cover letter and resume path"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobs/{id}/apply [post]
func (c *JobController) Apply(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	// The payload is entirely optional
	var req dto.ApplyRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			middleware.HandleBindingError(ctx, err)
			return
		}
	}

	application, err := c.jobService.Apply(ctx.Request.Context(), middleware.GetUserID(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ApplicationResponse{
		Message:     "Application submitted successfully",
		Application: application,
	})
}

// ListJobApplications lists a posting's applications for its owner
// @Summary List a job's applications
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.ApplicationListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobs/{id}/applications [get]
func (c *JobController) ListJobApplications(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.jobService.ListJobApplications(ctx.Request.Context(), middleware.GetUserID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListMyApplications lists the calling student's applications
// @Summary List own applications
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApplicationListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /jobs/my-applications [get]
func (c *JobController) ListMyApplications(ctx *gin.Context) {
	resp, err := c.jobService.ListMyApplications(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// UpdateApplicationStatus moves an application through review
// @Summary Update an application's status
// @Description Only the owner of the parent posting may review its applications.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobs/applications/{id}/status [put]
func (c *JobController) UpdateApplicationStatus(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	application, err := c.jobService.UpdateApplicationStatus(ctx.Request.Context(), middleware.GetUserID(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ApplicationResponse{
		Message:     "Application status updated",
		Application: application,
	})
}
