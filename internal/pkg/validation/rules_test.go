package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("priya@example.com"))
	assert.True(t, ValidEmail("priya.sharma+tag@college.edu"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("missing@tld"))
	assert.False(t, ValidEmail("@example.com"))
	assert.False(t, ValidEmail(""))
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("secret"))
	assert.True(t, ValidPassword("a longer passphrase"))
	assert.False(t, ValidPassword("abc"))
	assert.False(t, ValidPassword(""))
}

func TestAllowedExtension(t *testing.T) {
	allowed := []string{"png", "jpg", "jpeg"}

	assert.True(t, AllowedExtension("avatar.png", allowed))
	assert.True(t, AllowedExtension("AVATAR.PNG", allowed))
	assert.True(t, AllowedExtension("photo.JPeG", allowed))
	assert.False(t, AllowedExtension("resume.pdf", allowed))
	assert.False(t, AllowedExtension("no-extension", allowed))
	assert.False(t, AllowedExtension("", allowed))
}
