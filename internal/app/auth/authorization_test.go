package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Anurg29/Aluminiconnect/internal/app/models"
)

func TestAuthorizationService_IsAdmin(t *testing.T) {
	authz := NewAuthorizationService([]string{" Admin@AlumniConnect.com ", "", "ops@alumniconnect.com"})

	assert.True(t, authz.IsAdmin("admin@alumniconnect.com"))
	assert.True(t, authz.IsAdmin("ADMIN@ALUMNICONNECT.COM"))
	assert.True(t, authz.IsAdmin("ops@alumniconnect.com"))
	assert.False(t, authz.IsAdmin("priya@example.com"))
	assert.False(t, authz.IsAdmin(""))
}

func TestAuthorizationService_Ownership(t *testing.T) {
	authz := NewAuthorizationService(nil)

	job := &models.Job{ID: 11, AlumniID: 9}
	assert.True(t, authz.OwnsJob(9, job))
	assert.False(t, authz.OwnsJob(10, job))
	assert.False(t, authz.OwnsJob(9, nil))

	app := &models.Application{ID: 21, StudentID: 3}
	assert.True(t, authz.IsApplicant(3, app))
	assert.False(t, authz.IsApplicant(4, app))

	msg := &models.Message{ID: 1, SenderID: 1, ReceiverID: 2}
	assert.True(t, authz.IsSender(1, msg))
	assert.False(t, authz.IsSender(2, msg))
	assert.True(t, authz.IsReceiver(2, msg))
	assert.False(t, authz.IsReceiver(1, msg))
	assert.False(t, authz.IsSender(1, nil))
}
