package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Anurg29/Aluminiconnect/internal/app/models"
)

func testService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "alumniconnect.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       7,
		Email:    "priya@example.com",
		UserType: models.UserTypeAlumni,
	}
}

func TestGenerateTokenPair(t *testing.T) {
	service := testService()
	accessToken, refreshToken, err := service.GenerateTokenPair(testUser())

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	claims, err := service.ValidateAccessToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "priya@example.com", claims.Email)
	assert.Equal(t, string(models.UserTypeAlumni), claims.UserType)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, "alumniconnect.test", claims.Issuer)

	claims, err = service.ValidateRefreshToken(refreshToken)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestValidateToken_TypeMismatch(t *testing.T) {
	service := testService()
	accessToken, refreshToken, err := service.GenerateTokenPair(testUser())
	assert.NoError(t, err)

	_, err = service.ValidateAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrWrongTokenUse)

	_, err = service.ValidateRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrWrongTokenUse)
}

func TestValidateToken_Expired(t *testing.T) {
	service := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "alumniconnect.test",
	})

	token, err := service.GenerateAccessToken(testUser())
	assert.NoError(t, err)

	_, err = service.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := testService().GenerateAccessToken(testUser())
	assert.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
	})
	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Empty(t *testing.T) {
	_, err := testService().ValidateAccessToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// A header without the scheme is treated as the raw token
	token, err = ExtractBearerToken("abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "secret124"))
}
