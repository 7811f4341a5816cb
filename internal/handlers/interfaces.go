package handlers

import (
	"context"

	"github.com/partyspace/partyspace-api/internal/listings"
	"github.com/partyspace/partyspace-api/internal/session"
)

// SessionManagerInterface defines the methods used by handlers from the session Manager
type SessionManagerInterface interface {
	Snapshot() session.Snapshot
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password, displayName string) error
	Logout(ctx context.Context) error
}

// ListingServiceInterface defines the methods used by handlers from the listings Service
type ListingServiceInterface interface {
	Create(ctx context.Context, in listings.NewListing) (*listings.Listing, error)
	List(ctx context.Context) ([]*listings.Listing, error)
	ListByOwner(ctx context.Context, ownerUID string) ([]*listings.Listing, error)
}
