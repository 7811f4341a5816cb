// Package listings persists owner-submitted space listings.
package listings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/partyspace/partyspace-api/internal/database"
)

// Listing is a stored space listing.
type Listing struct {
	ID          uuid.UUID `json:"id"`
	OwnerUID    string    `json:"owner_uid"`
	SpaceName   string    `json:"space_name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Amenities   []string  `json:"amenities"`
	ImageURLs   []string  `json:"image_urls"`
	VideoURLs   []string  `json:"video_urls"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewListing is the input for creating a listing.
type NewListing struct {
	OwnerUID    string
	SpaceName   string
	Location    string
	Description string
	Latitude    float64
	Longitude   float64
	Amenities   []string
	ImageURLs   []string
	VideoURLs   []string
}

// orEmpty keeps array columns non-null; pgx writes a nil slice as NULL.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type Service struct {
	db     *database.DB
	policy *bluemonday.Policy
}

func NewService(db *database.DB) *Service {
	return &Service{
		db:     db,
		policy: bluemonday.StrictPolicy(),
	}
}

// Create sanitizes the free-text fields and inserts the listing.
func (s *Service) Create(ctx context.Context, in NewListing) (*Listing, error) {
	listing := &Listing{
		ID:          uuid.New(),
		OwnerUID:    in.OwnerUID,
		SpaceName:   s.policy.Sanitize(in.SpaceName),
		Location:    s.policy.Sanitize(in.Location),
		Description: s.policy.Sanitize(in.Description),
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Amenities:   orEmpty(in.Amenities),
		ImageURLs:   orEmpty(in.ImageURLs),
		VideoURLs:   orEmpty(in.VideoURLs),
		CreatedAt:   time.Now().UTC(),
	}

	query := `
		INSERT INTO space_listings (id, owner_uid, space_name, location, description, latitude, longitude, amenities, image_urls, video_urls, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.Pool.Exec(ctx, query,
		listing.ID, listing.OwnerUID, listing.SpaceName, listing.Location,
		listing.Description, listing.Latitude, listing.Longitude,
		listing.Amenities, listing.ImageURLs, listing.VideoURLs, listing.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert listing: %w", err)
	}

	return listing, nil
}

// List returns all listings, newest first.
func (s *Service) List(ctx context.Context) ([]*Listing, error) {
	query := `
		SELECT id, owner_uid, space_name, location, description, latitude, longitude, amenities, image_urls, video_urls, created_at
		FROM space_listings
		ORDER BY created_at DESC
	`
	rows, err := s.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var out []*Listing
	for rows.Next() {
		var l Listing
		err := rows.Scan(
			&l.ID, &l.OwnerUID, &l.SpaceName, &l.Location, &l.Description,
			&l.Latitude, &l.Longitude, &l.Amenities, &l.ImageURLs, &l.VideoURLs,
			&l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		out = append(out, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listings: %w", err)
	}

	return out, nil
}

// ListByOwner returns one owner's listings, newest first.
func (s *Service) ListByOwner(ctx context.Context, ownerUID string) ([]*Listing, error) {
	query := `
		SELECT id, owner_uid, space_name, location, description, latitude, longitude, amenities, image_urls, video_urls, created_at
		FROM space_listings
		WHERE owner_uid = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.Pool.Query(ctx, query, ownerUID)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var out []*Listing
	for rows.Next() {
		var l Listing
		err := rows.Scan(
			&l.ID, &l.OwnerUID, &l.SpaceName, &l.Location, &l.Description,
			&l.Latitude, &l.Longitude, &l.Amenities, &l.ImageURLs, &l.VideoURLs,
			&l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		out = append(out, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listings: %w", err)
	}

	return out, nil
}
