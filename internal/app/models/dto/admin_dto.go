package dto

// AdminUserFilter holds the admin user listing filters. Verified and
// active arrive as bool strings and stay unset when absent.
type AdminUserFilter struct {
	UserType   string `form:"user_type"`
	IsVerified *bool  `form:"is_verified"`
	IsActive   *bool  `form:"is_active"`
	Search     string `form:"search"`
}

// AdminUserListResponse is the body of admin user listings
type AdminUserListResponse struct {
	Count int            `json:"count"`
	Users []*UserProfile `json:"users"`
}

// AdminUserActionResponse confirms a verify/activate/deactivate action
type AdminUserActionResponse struct {
	Message string       `json:"message"`
	User    *UserProfile `json:"user"`
}

// AdminUserDetailResponse is a profile plus activity counters
type AdminUserDetailResponse struct {
	*UserProfile

	JobsPostedCount       *int64 `json:"jobs_posted_count,omitempty"`
	ApplicationsCount     *int64 `json:"applications_count,omitempty"`
	MessagesSentCount     int64  `json:"messages_sent_count"`
	MessagesReceivedCount int64  `json:"messages_received_count"`
}

// AdminStatsResponse aggregates platform-wide user counts plus the
// activity totals of the job board and messaging
type AdminStatsResponse struct {
	TotalUsers       int64 `json:"total_users"`
	VerifiedUsers    int64 `json:"verified_users"`
	PendingUsers     int64 `json:"pending_users"`
	ActiveUsers      int64 `json:"active_users"`
	TotalStudents    int64 `json:"total_students"`
	TotalAlumni      int64 `json:"total_alumni"`
	VerifiedStudents int64 `json:"verified_students"`
	VerifiedAlumni   int64 `json:"verified_alumni"`

	ActiveJobs        int64 `json:"active_jobs"`
	TotalApplications int64 `json:"total_applications"`
	TotalMessages     int64 `json:"total_messages"`
}
