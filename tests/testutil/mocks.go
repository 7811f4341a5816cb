package testutil

import (
	"context"

	"github.com/partyspace/partyspace-api/internal/listings"
	"github.com/partyspace/partyspace-api/internal/session"
	"github.com/stretchr/testify/mock"
)

// MockSessionManager mocks the session Manager
type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) Snapshot() session.Snapshot {
	args := m.Called()
	return args.Get(0).(session.Snapshot)
}

func (m *MockSessionManager) SignIn(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockSessionManager) SignUp(ctx context.Context, email, password, displayName string) error {
	args := m.Called(ctx, email, password, displayName)
	return args.Error(0)
}

func (m *MockSessionManager) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockListingService mocks the listings Service
type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) Create(ctx context.Context, in listings.NewListing) (*listings.Listing, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listings.Listing), args.Error(1)
}

func (m *MockListingService) List(ctx context.Context) ([]*listings.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*listings.Listing), args.Error(1)
}

func (m *MockListingService) ListByOwner(ctx context.Context, ownerUID string) ([]*listings.Listing, error) {
	args := m.Called(ctx, ownerUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*listings.Listing), args.Error(1)
}
