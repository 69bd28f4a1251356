package models

// UserType defines the account role
type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeAlumni  UserType = "alumni"
)

// IsValid reports whether the value is one of the known roles
func (t UserType) IsValid() bool {
	return t == UserTypeStudent || t == UserTypeAlumni
}

// JobType defines the employment type of a posting
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeInternship JobType = "internship"
	JobTypeContract   JobType = "contract"
)

// IsValid reports whether the value is one of the known job types
func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeContract:
		return true
	}
	return false
}

// ApplicationStatus defines the review state of an application.
// Transitions between valid values are not constrained; the alumni
// owning the parent job may set any of them.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewed    ApplicationStatus = "reviewed"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationAccepted    ApplicationStatus = "accepted"
)

// IsValid reports whether the value is one of the known statuses
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationShortlisted,
		ApplicationRejected, ApplicationAccepted:
		return true
	}
	return false
}
