package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Anurg29/Aluminiconnect/internal/pkg/apperrors"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/auth"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired jwt", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"wrong token type", auth.ErrWrongTokenUse, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"wrapped forbidden", apperrors.NewForbiddenError("not yours"), http.StatusForbidden},
		{"account not verified", apperrors.ErrAccountNotVerified, http.StatusForbidden},
		{"account deactivated", apperrors.ErrAccountDeactivated, http.StatusForbidden},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"job not found", apperrors.ErrJobNotFound, http.StatusNotFound},
		{"inactive job hidden as not found", apperrors.ErrJobInactive, http.StatusNotFound},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusBadRequest},
		{"double apply", apperrors.ErrAlreadyApplied, http.StatusBadRequest},
		{"wrapped bad request", apperrors.NewBadRequestError("nope"), http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, statusFor(tt.err))
		})
	}
}

func TestHandleAPIError_FlatContract(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("client error keeps its message", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/jobs/1", nil)

		HandleAPIError(c, apperrors.ErrJobInactive)

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, map[string]string{"error": "job not found or inactive"}, body)
	})

	t.Run("internal error is masked", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/jobs", nil)

		HandleAPIError(c, errors.New("pq: connection reset"))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "Internal server error", body["error"])
	})
}

func TestHandleBindingError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	HandleBindingError(c, errors.New("missing field"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid request payload")
}
