package dto

import (
	"github.com/Anurg29/Aluminiconnect/internal/app/models"
)

// CreateJobRequest carries a new posting. The deadline is an RFC 3339
// string, parsed and rejected with a 400 when malformed.
type CreateJobRequest struct {
	Title               string  `json:"title" binding:"required"`
	Company             string  `json:"company" binding:"required"`
	JobType             string  `json:"job_type" binding:"required"`
	Description         string  `json:"description" binding:"required"`
	Location            *string `json:"location"`
	Requirements        *string `json:"requirements"`
	SalaryRange         *string `json:"salary_range"`
	ApplicationDeadline *string `json:"application_deadline"`
}

// UpdateJobRequest is a partial update of an owned posting
type UpdateJobRequest struct {
	Title               *string `json:"title"`
	Company             *string `json:"company"`
	Location            *string `json:"location"`
	JobType             *string `json:"job_type"`
	Description         *string `json:"description"`
	Requirements        *string `json:"requirements"`
	SalaryRange         *string `json:"salary_range"`
	IsActive            *bool   `json:"is_active"`
	ApplicationDeadline *string `json:"application_deadline"`
}

// JobResponse wraps a single posting with a confirmation message
type JobResponse struct {
	Message string      `json:"message"`
	Job     *models.Job `json:"job"`
}

// JobListResponse is the body of job listings
type JobListResponse struct {
	Count int           `json:"count"`
	Jobs  []*models.Job `json:"jobs"`
}

// JobFilter holds the conjunctive job listing filters
type JobFilter struct {
	JobType  string `form:"job_type"`
	Company  string `form:"company"`
	Location string `form:"location"`
	Search   string `form:"search"`
}

// ApplyRequest carries an application to a posting
type ApplyRequest struct {
	CoverLetter *string `json:"cover_letter"`
	ResumePath  *string `json:"resume_path"`
}

// ApplicationResponse wraps a single application with a message
type ApplicationResponse struct {
	Message     string              `json:"message"`
	Application *models.Application `json:"application"`
}

// ApplicationListResponse is the body of application listings
type ApplicationListResponse struct {
	Count        int                   `json:"count"`
	Applications []*models.Application `json:"applications"`
}

// UpdateApplicationStatusRequest sets an application's status label
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
