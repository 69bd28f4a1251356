package validation

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// EmailPattern is the accepted email shape for both login and
	// college addresses
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// PasswordMinLength is the minimum accepted credential length
	PasswordMinLength = 6
)

var emailRegex = regexp.MustCompile(EmailPattern)

// ValidEmail reports whether the value looks like an email address
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidPassword reports whether the credential meets the length rule
func ValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}

// AllowedExtension reports whether the filename carries one of the
// allowed extensions (compared without the leading dot, case folded)
func AllowedExtension(filename string, allowed []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if ext == strings.ToLower(a) {
			return true
		}
	}
	return false
}
