// Package auth holds the authorization policy applied by services:
// the admin allow-list and the per-entity ownership predicates.
package auth

import (
	"strings"

	"github.com/Anurg29/Aluminiconnect/internal/app/models"
)

// AuthorizationService answers the authorization questions handlers
// need: caller is admin, caller owns the job, caller matches the
// sender/receiver of a message. Keeping these in one place avoids
// re-deriving the checks per handler.
type AuthorizationService struct {
	adminEmails map[string]struct{}
}

// NewAuthorizationService builds the policy from the configured
// administrator allow-list. The list is fixed for the process lifetime.
func NewAuthorizationService(adminEmails []string) *AuthorizationService {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			admins[email] = struct{}{}
		}
	}
	return &AuthorizationService{adminEmails: admins}
}

// IsAdmin reports whether the email is on the administrator allow-list.
// No stored role field grants admin access; the allow-list alone does.
func (s *AuthorizationService) IsAdmin(email string) bool {
	_, ok := s.adminEmails[strings.ToLower(email)]
	return ok
}

// OwnsJob reports whether the caller posted the job
func (s *AuthorizationService) OwnsJob(userID int64, job *models.Job) bool {
	return job != nil && job.AlumniID == userID
}

// IsApplicant reports whether the caller submitted the application
func (s *AuthorizationService) IsApplicant(userID int64, app *models.Application) bool {
	return app != nil && app.StudentID == userID
}

// IsSender reports whether the caller sent the message
func (s *AuthorizationService) IsSender(userID int64, msg *models.Message) bool {
	return msg != nil && msg.SenderID == userID
}

// IsReceiver reports whether the caller received the message
func (s *AuthorizationService) IsReceiver(userID int64, msg *models.Message) bool {
	return msg != nil && msg.ReceiverID == userID
}
