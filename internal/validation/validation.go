// Package validation holds the pure input checks shared by the sign-in and
// sign-up flows. Nothing here touches the network or any state.
package validation

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether email looks like local@domain.tld.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// PasswordValidation is the result of a password strength check.
type PasswordValidation struct {
	Valid   bool
	Message string
}

// ValidatePassword checks password strength. Only the minimum length is
// enforced; character composition is deliberately not checked.
func ValidatePassword(password string) PasswordValidation {
	if len(password) < 6 {
		return PasswordValidation{Valid: false, Message: "Password must be at least 6 characters"}
	}
	return PasswordValidation{Valid: true, Message: "Password is valid"}
}
