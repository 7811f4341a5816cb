package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"a@b.co",
		"user@example.com",
		"first.last@sub.domain.org",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"missing-domain@",
		"@missing-local.com",
		"no-dot@domain",
		"spaces in@local.com",
		"trailing-dot@domain.",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestValidatePassword_TooShort(t *testing.T) {
	for _, password := range []string{"", "a", "12345"} {
		result := ValidatePassword(password)
		assert.False(t, result.Valid)
		assert.Equal(t, "Password must be at least 6 characters", result.Message)
	}
}

func TestValidatePassword_LengthOnly(t *testing.T) {
	// Composition does not matter, only length.
	for _, password := range []string{"abcdef", "123456", "      ", "aaaaaaA1!"} {
		result := ValidatePassword(password)
		assert.True(t, result.Valid)
		assert.Equal(t, "Password is valid", result.Message)
	}
}
