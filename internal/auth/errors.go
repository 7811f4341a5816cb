package auth

import (
	"errors"

	"github.com/partyspace/partyspace-api/internal/identity"
)

// Kind tags a domain authentication error. One variant exists per provider
// error code the UI distinguishes, plus local validation, sign-out, and a
// catch-all for codes outside the known set.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindEmailInUse
	KindInvalidEmail
	KindWeakPassword
	KindUserNotFound
	KindWrongPassword
	KindUserDisabled
	KindSignOut
)

// Error is the only error type that crosses the session-client boundary.
// The provider's native error representation never leaks past it.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func validationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// providerKinds maps the provider's closed code set to domain kinds and
// fixed user-facing messages.
var providerKinds = map[string]struct {
	kind    Kind
	message string
}{
	identity.CodeEmailExists:     {KindEmailInUse, "This email is already in use"},
	identity.CodeEmailNotFound:   {KindUserNotFound, "No account found with this email"},
	identity.CodeInvalidPassword: {KindWrongPassword, "Incorrect password"},
	identity.CodeWeakPassword:    {KindWeakPassword, "Password is too weak"},
	identity.CodeInvalidEmail:    {KindInvalidEmail, "Invalid email address"},
	identity.CodeUserDisabled:    {KindUserDisabled, "This account has been disabled"},
}

// fromProvider remaps a provider failure into a domain error. Unknown
// codes keep the provider's own message when it has one; transport errors
// fall back to the operation's generic message.
func fromProvider(err error, fallback string) *Error {
	var perr *identity.ProviderError
	if !errors.As(err, &perr) {
		return &Error{Kind: KindUnknown, Message: fallback}
	}

	if mapped, ok := providerKinds[perr.Code]; ok {
		return &Error{Kind: mapped.kind, Message: mapped.message}
	}

	message := perr.Message
	if message == "" {
		message = fallback
	}
	return &Error{Kind: KindUnknown, Message: message}
}
