package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/Anurg29/Aluminiconnect/internal/app/auth"
	"github.com/Anurg29/Aluminiconnect/internal/app/models"
	"github.com/Anurg29/Aluminiconnect/internal/app/models/dto"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/auth"
)

// Context keys set by the middleware for downstream handlers
const (
	ContextUserID   = "userID"
	ContextEmail    = "userEmail"
	ContextUserType = "userType"
)

// UserLoader fetches the account behind a token so the middleware can
// check live state instead of trusting stale claims
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthMiddleware guards routes with JWT validation and the admin
// allow-list policy
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   UserLoader
	authz      *appauth.AuthorizationService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo UserLoader, authz *appauth.AuthorizationService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		authz:      authz,
	}
}

func abortWith(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message))
}

// JWTAuth validates the bearer token, requires the access type, and
// places the caller's identity on the request context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortWith(c, http.StatusUnauthorized, "Authorization header missing or malformed")
			return
		}

		claims, err := m.jwtService.ValidateAccessToken(tokenString)
		if err != nil {
			switch err {
			case auth.ErrExpiredToken:
				abortWith(c, http.StatusUnauthorized, "Token expired")
			case auth.ErrWrongTokenUse:
				abortWith(c, http.StatusUnauthorized, "Access token required")
			default:
				abortWith(c, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextUserType, claims.UserType)

		c.Next()
	}
}

// AdminRequired gates a route on the administrator allow-list. The
// email is resolved from the live user record, not the token, so a
// renamed or deleted account loses access immediately.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == 0 {
			abortWith(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		user, err := m.userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			abortWith(c, http.StatusForbidden, "Admin access required")
			return
		}

		if !m.authz.IsAdmin(user.Email) {
			abortWith(c, http.StatusForbidden, "Admin access required")
			return
		}

		c.Next()
	}
}

// AlumniRequired gates a route on the alumni role
func (m *AuthMiddleware) AlumniRequired() gin.HandlerFunc {
	return requireRole(models.UserTypeAlumni, "Only alumni can perform this action")
}

// StudentRequired gates a route on the student role
func (m *AuthMiddleware) StudentRequired() gin.HandlerFunc {
	return requireRole(models.UserTypeStudent, "Only students can perform this action")
}

func requireRole(role models.UserType, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserType) != string(role) {
			abortWith(c, http.StatusForbidden, message)
			return
		}
		c.Next()
	}
}

// GetUserID reads the authenticated user ID off the request context
func GetUserID(c *gin.Context) int64 {
	id, _ := c.Get(ContextUserID)
	userID, _ := id.(int64)
	return userID
}
