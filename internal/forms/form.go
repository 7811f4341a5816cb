// Package forms carries the state of an authentication form: field
// values, per-field error messages, and the submission lifecycle.
package forms

import (
	"context"
	"sync"

	"github.com/partyspace/partyspace-api/internal/validation"
)

const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldName            = "name"
	FieldConfirmPassword = "confirmPassword"
	FieldGeneral         = "general"
)

// Authenticator is the session surface form submissions go through.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password, displayName string) error
}

// Form holds one authentication form's values and errors. Validation
// failures populate per-field messages; submission failures land under
// the general key.
type Form struct {
	auth Authenticator

	mu      sync.RWMutex
	values  map[string]string
	errors  map[string]string
	loading bool
}

func New(auth Authenticator) *Form {
	return &Form{
		auth:   auth,
		values: make(map[string]string),
		errors: make(map[string]string),
	}
}

// UpdateField sets a field's value and clears any error recorded for it,
// so a correction immediately removes the stale message.
func (f *Form) UpdateField(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[field] = value
	delete(f.errors, field)
}

func (f *Form) Value(field string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.values[field]
}

// Errors returns a copy of the current field errors.
func (f *Form) Errors() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

func (f *Form) Error(field string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.errors[field]
}

func (f *Form) Loading() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.loading
}

func (f *Form) SetError(field, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors[field] = message
}

func (f *Form) ClearErrors() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = make(map[string]string)
}

// ValidateSignIn checks the sign-in fields and records any messages.
// It reports whether the form is submittable.
func (f *Form) ValidateSignIn() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	errs := make(map[string]string)
	f.checkEmail(errs)
	f.checkPassword(errs)
	f.errors = errs
	return len(errs) == 0
}

// ValidateSignUp checks the sign-up fields, including the name and the
// password confirmation.
func (f *Form) ValidateSignUp() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	errs := make(map[string]string)
	if f.values[FieldName] == "" {
		errs[FieldName] = "Full name is required"
	}
	f.checkEmail(errs)
	f.checkPassword(errs)
	switch {
	case f.values[FieldConfirmPassword] == "":
		errs[FieldConfirmPassword] = "Please confirm your password"
	case f.values[FieldConfirmPassword] != f.values[FieldPassword]:
		errs[FieldConfirmPassword] = "Passwords do not match"
	}
	f.errors = errs
	return len(errs) == 0
}

func (f *Form) checkEmail(errs map[string]string) {
	email := f.values[FieldEmail]
	switch {
	case email == "":
		errs[FieldEmail] = "Email is required"
	case !validation.IsValidEmail(email):
		errs[FieldEmail] = "Please enter a valid email address"
	}
}

func (f *Form) checkPassword(errs map[string]string) {
	password := f.values[FieldPassword]
	pv := validation.ValidatePassword(password)
	switch {
	case password == "":
		errs[FieldPassword] = "Password is required"
	case !pv.Valid:
		errs[FieldPassword] = pv.Message
	}
}

// HandleSignIn validates, then submits. Validation failure never reaches
// the session client. Reports whether sign-in succeeded.
func (f *Form) HandleSignIn(ctx context.Context) bool {
	if !f.ValidateSignIn() {
		return false
	}
	return f.submit(func() error {
		return f.auth.SignIn(ctx, f.Value(FieldEmail), f.Value(FieldPassword))
	}, "Failed to sign in. Please try again.")
}

// HandleSignUp validates, then submits.
func (f *Form) HandleSignUp(ctx context.Context) bool {
	if !f.ValidateSignUp() {
		return false
	}
	return f.submit(func() error {
		return f.auth.SignUp(ctx, f.Value(FieldEmail), f.Value(FieldPassword), f.Value(FieldName))
	}, "Failed to create account. Please try again.")
}

func (f *Form) submit(fn func() error, fallback string) bool {
	f.setLoading(true)
	defer f.setLoading(false)

	if err := fn(); err != nil {
		message := err.Error()
		if message == "" {
			message = fallback
		}
		f.SetError(FieldGeneral, message)
		return false
	}

	f.mu.Lock()
	f.values = make(map[string]string)
	f.errors = make(map[string]string)
	f.mu.Unlock()
	return true
}

func (f *Form) setLoading(v bool) {
	f.mu.Lock()
	f.loading = v
	f.mu.Unlock()
}
