package profile

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/partyspace/partyspace-api/internal/identity"
)

// ProfileStore is the document-store boundary the reconciler depends on.
type ProfileStore interface {
	Get(ctx context.Context, uid string) (*Profile, error)
	Put(ctx context.Context, p *Profile) error
}

// Reconciler resolves the profile record for an authenticated identity.
// It never fails outward: the surrounding session must stay usable even
// when the profile store is degraded.
type Reconciler struct {
	store ProfileStore
}

func NewReconciler(store ProfileStore) *Reconciler {
	return &Reconciler{store: store}
}

// Resolve returns the stored profile for ident, creating a default one on
// first authentication. It keys exclusively off the identity it is handed,
// never off ambient session state.
func (r *Reconciler) Resolve(ctx context.Context, ident *identity.Identity) *Profile {
	stored, err := r.store.Get(ctx, ident.UID)
	if err == nil {
		return stored
	}

	if !errors.Is(err, ErrNotFound) {
		// Store unreachable: skip the write, synthesize from the identity
		// alone. No creation timestamp, since nothing was created.
		log.Printf("profile store degraded, using auth data for %s: %v", ident.UID, err)
		return defaultProfile(ident, "")
	}

	created := defaultProfile(ident, time.Now().UTC().Format(time.RFC3339))
	if err := r.store.Put(ctx, created); err != nil {
		log.Printf("could not create profile for %s: %v", ident.UID, err)
	}
	return created
}

func defaultProfile(ident *identity.Identity, createdAt string) *Profile {
	return &Profile{
		UID:         ident.UID,
		Email:       ident.Email,
		DisplayName: ident.DisplayName,
		IsAdmin:     false,
		CreatedAt:   createdAt,
	}
}
