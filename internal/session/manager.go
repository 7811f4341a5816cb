// Package session tracks the authenticated session as a small state
// machine. Every provider event moves it through resolving into either
// authenticated or anonymous, and downstream consumers only ever see one
// of those three states.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/partyspace/partyspace-api/internal/identity"
	"github.com/partyspace/partyspace-api/internal/profile"
)

// State is the session lifecycle phase. Resolving is the initial state
// and also holds while a fresh identity's profile is being looked up.
type State int

const (
	StateResolving State = iota
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateResolving:
		return "resolving"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the session at one point in time.
type Snapshot struct {
	State   State
	User    *identity.Identity
	Profile *profile.Profile
	IsAdmin bool
	Loading bool
}

// AuthClient is the session-client surface the manager drives.
type AuthClient interface {
	SignUp(ctx context.Context, email, password, displayName string) error
	SignIn(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
	Subscribe(fn func(*identity.Identity)) func()
}

// Resolver produces the profile for an authenticated identity.
type Resolver interface {
	Resolve(ctx context.Context, ident *identity.Identity) *profile.Profile
}

// Manager owns the session state machine. It subscribes to the session
// client, resolves profiles for incoming identities, and fans snapshots
// out to its own subscribers.
type Manager struct {
	client   AuthClient
	resolver Resolver

	mu          sync.RWMutex
	snapshot    Snapshot
	subs        map[string]func(Snapshot)
	seq         uint64
	unsubscribe func()
}

func NewManager(client AuthClient, resolver Resolver) *Manager {
	return &Manager{
		client:   client,
		resolver: resolver,
		snapshot: Snapshot{State: StateResolving, Loading: true},
		subs:     make(map[string]func(Snapshot)),
	}
}

// Start attaches the manager to the session client's event stream. The
// client reports its current state immediately, so by the time Start
// returns the first transition is already underway.
func (m *Manager) Start() {
	m.unsubscribe = m.client.Subscribe(m.handleChange)
}

// Close detaches from the session client.
func (m *Manager) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// handleChange processes one provider event. Each event takes a sequence
// number under the lock; if a newer event arrives while this one's profile
// lookup is in flight, the stale result is discarded so the session can
// never settle on an outdated identity.
func (m *Manager) handleChange(ident *identity.Identity) {
	m.mu.Lock()
	m.seq++
	seq := m.seq

	if ident == nil {
		m.publishLocked(Snapshot{State: StateAnonymous})
		m.mu.Unlock()
		return
	}

	m.publishLocked(Snapshot{State: StateResolving, User: ident, Loading: true})
	m.mu.Unlock()

	prof := m.resolver.Resolve(context.Background(), ident)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seq != seq {
		return
	}
	m.publishLocked(Snapshot{
		State:   StateAuthenticated,
		User:    ident,
		Profile: prof,
		IsAdmin: prof.IsAdmin,
	})
}

func (m *Manager) publishLocked(snap Snapshot) {
	m.snapshot = snap
	for _, fn := range m.subs {
		fn(snap)
	}
}

// Snapshot returns the current session state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

// Subscribe registers fn for every snapshot transition and returns an
// unsubscribe handle.
func (m *Manager) Subscribe(fn func(Snapshot)) func() {
	id := uuid.New().String()

	m.mu.Lock()
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// SignIn delegates to the session client. State changes arrive through
// the subscription, not from the call's return value.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	return m.client.SignIn(ctx, email, password)
}

func (m *Manager) SignUp(ctx context.Context, email, password, displayName string) error {
	return m.client.SignUp(ctx, email, password, displayName)
}

func (m *Manager) Logout(ctx context.Context) error {
	return m.client.SignOut(ctx)
}
