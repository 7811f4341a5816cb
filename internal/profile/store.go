package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/partyspace/partyspace-api/internal/database"
)

// ErrNotFound reports that no profile record exists for the key. It is the
// one store failure the reconciler treats as expected rather than degraded.
var ErrNotFound = errors.New("profile not found")

// Store reads and writes profile records by key. The core uses no list or
// query operations against this collection.
type Store struct {
	db *database.DB
}

func NewStore(db *database.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, uid string) (*Profile, error) {
	var p Profile
	err := s.db.Pool.QueryRow(ctx, `
		SELECT uid, email, display_name, is_admin, photo_url, created_at
		FROM profiles WHERE uid = $1
	`, uid).Scan(&p.UID, &p.Email, &p.DisplayName, &p.IsAdmin, &p.PhotoURL, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	return &p, nil
}

// Put upserts the record keyed by p.UID.
func (s *Store) Put(ctx context.Context, p *Profile) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO profiles (uid, email, display_name, is_admin, photo_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (uid) DO UPDATE
		SET email = $2, display_name = $3, is_admin = $4, photo_url = $5, created_at = $6
	`, p.UID, p.Email, p.DisplayName, p.IsAdmin, p.PhotoURL, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// SetAdmin flips the administrator flag for the profile with the given
// email. Returns the number of affected rows; used by the promote-admin
// command, the only mutation path besides default creation.
func (s *Store) SetAdmin(ctx context.Context, email string, isAdmin bool) (int64, error) {
	result, err := s.db.Pool.Exec(ctx, `
		UPDATE profiles SET is_admin = $1 WHERE email = $2
	`, isAdmin, email)
	if err != nil {
		return 0, fmt.Errorf("failed to update profile: %w", err)
	}
	return result.RowsAffected(), nil
}
