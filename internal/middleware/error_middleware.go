package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Anurg29/Aluminiconnect/internal/app/models/dto"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/apperrors"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/auth"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/logger"
)

// HandleAPIError maps a service error onto the flat error contract:
// a status code and {"error": message}. Unrecognized errors become an
// opaque 500 so internals never leak to clients.
func HandleAPIError(c *gin.Context, err error) {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled service error")
		message = "Internal server error"
	}

	c.JSON(status, dto.NewErrorResponse(message))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrWrongTokenUse),
		errors.Is(err, auth.ErrInvalidFormat):
		return http.StatusUnauthorized

	case errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrAccountNotVerified),
		errors.Is(err, apperrors.ErrAccountDeactivated):
		return http.StatusForbidden

	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrJobNotFound),
		errors.Is(err, apperrors.ErrApplicationNotFound),
		errors.Is(err, apperrors.ErrMessageNotFound),
		errors.Is(err, apperrors.ErrJobInactive):
		return http.StatusNotFound

	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrCollegeEmailAlreadyExists),
		errors.Is(err, apperrors.ErrAlreadyApplied):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// HandleBindingError turns a failed payload bind into a flat 400
func HandleBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload: "+err.Error()))
}
