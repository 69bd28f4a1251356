package models

import (
	"time"
)

// Job defines the job posting model based on the 'jobs' table.
// Each posting is owned by exactly one alumni user; deleting a job
// cascades to its applications at the storage layer.
type Job struct {
	ID                  int64      `json:"id" db:"id"`
	AlumniID            int64      `json:"alumni_id" db:"alumni_id"`
	Title               string     `json:"title" db:"title"`
	Company             string     `json:"company" db:"company"`
	Location            *string    `json:"location,omitempty" db:"location"`
	JobType             JobType    `json:"job_type" db:"job_type"`
	Description         string     `json:"description" db:"description"`
	Requirements        *string    `json:"requirements,omitempty" db:"requirements"`
	SalaryRange         *string    `json:"salary_range,omitempty" db:"salary_range"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty" db:"application_deadline"`
	IsActive            bool       `json:"is_active" db:"is_active"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`

	// Denormalized for responses, populated by joins
	AlumniName        string `json:"alumni_name,omitempty" db:"-"`
	ApplicationsCount int64  `json:"applications_count" db:"-"`
}
