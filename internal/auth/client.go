// Package auth is the session client: the single wrapper around the
// identity provider. It validates inputs before any network call, remaps
// provider error codes into domain errors, and notifies subscribers of
// every session-state transition.
package auth

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/partyspace/partyspace-api/internal/identity"
	"github.com/partyspace/partyspace-api/internal/profile"
	"github.com/partyspace/partyspace-api/internal/validation"
)

// ProfileWriter receives the best-effort profile write on sign-up.
type ProfileWriter interface {
	Put(ctx context.Context, p *profile.Profile) error
}

type Client struct {
	provider identity.Provider
	profiles ProfileWriter

	mu      sync.RWMutex
	session *identity.Session
	subs    map[string]func(*identity.Identity)
}

func NewClient(provider identity.Provider, profiles ProfileWriter) *Client {
	return &Client{
		provider: provider,
		profiles: profiles,
		subs:     make(map[string]func(*identity.Identity)),
	}
}

// SignUp creates an account, names it, and best-effort persists a default
// profile. Sign-up is successful once the provider accepts the
// credentials, regardless of the profile write's outcome.
func (c *Client) SignUp(ctx context.Context, email, password, displayName string) error {
	if email == "" || password == "" || displayName == "" {
		return validationError("All fields are required")
	}
	if len(password) < 6 {
		return validationError("Password must be at least 6 characters")
	}
	if !validation.IsValidEmail(email) {
		return validationError("Please enter a valid email address")
	}

	session, err := c.provider.CreateAccount(ctx, email, password)
	if err != nil {
		return fromProvider(err, "Failed to create account")
	}

	if err := c.provider.SetDisplayName(ctx, session.IDToken, displayName); err != nil {
		return fromProvider(err, "Failed to create account")
	}
	session.Identity.DisplayName = displayName

	created := &profile.Profile{
		UID:         session.Identity.UID,
		Email:       session.Identity.Email,
		DisplayName: displayName,
		IsAdmin:     false,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := c.profiles.Put(ctx, created); err != nil {
		log.Printf("could not save profile for %s, but signup completed: %v", session.Identity.UID, err)
	}

	c.setSession(session)
	return nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return validationError("Email and password are required")
	}

	session, err := c.provider.SignIn(ctx, email, password)
	if err != nil {
		return fromProvider(err, "Failed to sign in")
	}

	c.setSession(session)
	return nil
}

func (c *Client) SignOut(ctx context.Context) error {
	c.mu.RLock()
	session := c.session
	c.mu.RUnlock()

	if session != nil {
		if err := c.provider.SignOut(ctx, session.IDToken); err != nil {
			log.Printf("error logging out: %v", err)
			return &Error{Kind: KindSignOut, Message: "Failed to log out"}
		}
	}

	c.setSession(nil)
	return nil
}

// Subscribe registers fn for every session-state transition and returns an
// unsubscribe handle. fn is invoked immediately with the current state, the
// way the provider's own listener reports the state it already knows.
func (c *Client) Subscribe(fn func(*identity.Identity)) func() {
	id := uuid.New().String()

	c.mu.Lock()
	c.subs[id] = fn
	current := currentIdentity(c.session)
	c.mu.Unlock()

	fn(current)

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Client) setSession(session *identity.Session) {
	c.mu.Lock()
	c.session = session
	subs := make([]func(*identity.Identity), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	ident := currentIdentity(session)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(ident)
	}
}

func currentIdentity(session *identity.Session) *identity.Identity {
	if session == nil {
		return nil
	}
	ident := session.Identity
	return &ident
}
