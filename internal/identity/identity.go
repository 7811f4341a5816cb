// Package identity is the boundary to the external identity provider.
// Credential verification and session issuance happen on the provider's
// side; this package only talks to it and reports its error codes.
package identity

import (
	"context"
	"fmt"
	"time"
)

// Identity is the authenticated principal as reported by the provider.
// The application holds a read-only copy.
type Identity struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Session is a live provider session for one identity.
type Session struct {
	Identity  Identity
	IDToken   string
	ExpiresAt time.Time
}

// Provider error codes. The set is closed; anything else passes through
// verbatim and is treated as unknown by the session client.
const (
	CodeEmailExists     = "EMAIL_EXISTS"
	CodeEmailNotFound   = "EMAIL_NOT_FOUND"
	CodeInvalidPassword = "INVALID_PASSWORD"
	CodeWeakPassword    = "WEAK_PASSWORD"
	CodeInvalidEmail    = "INVALID_EMAIL"
	CodeUserDisabled    = "USER_DISABLED"
	CodeInvalidIDToken  = "INVALID_ID_TOKEN"
)

// ProviderError is a failure reported by the identity provider.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Provider performs account and session operations against the identity
// provider. Implementations own all session tokens; callers treat IDToken
// as opaque.
type Provider interface {
	Name() string
	CreateAccount(ctx context.Context, email, password string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SetDisplayName(ctx context.Context, idToken, name string) error
	SignOut(ctx context.Context, idToken string) error
}
