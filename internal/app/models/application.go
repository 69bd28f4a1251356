package models

import (
	"time"
)

// Application links one job and one student, unique per (job, student)
// pair. Re-application is rejected by the storage constraint.
type Application struct {
	ID          int64             `json:"id" db:"id"`
	JobID       int64             `json:"job_id" db:"job_id"`
	StudentID   int64             `json:"student_id" db:"student_id"`
	CoverLetter *string           `json:"cover_letter,omitempty" db:"cover_letter"`
	ResumePath  *string           `json:"resume_path,omitempty" db:"resume_path"`
	Status      ApplicationStatus `json:"status" db:"status"`
	AppliedAt   time.Time         `json:"applied_at" db:"applied_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`

	// Denormalized for responses, populated by joins
	JobTitle     string `json:"job_title,omitempty" db:"-"`
	StudentName  string `json:"student_name,omitempty" db:"-"`
	StudentEmail string `json:"student_email,omitempty" db:"-"`
}
