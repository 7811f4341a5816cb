package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	// Profile records mirror the identity provider's principals. The uid is
	// the provider's identifier, not one we generate, so no uuid default.
	// created_at is the profile document's ISO-8601 string; it is absent on
	// profiles synthesized while the store was unreachable.
	`CREATE TABLE IF NOT EXISTS profiles (
		uid VARCHAR(128) PRIMARY KEY,
		email VARCHAR(255) NOT NULL DEFAULT '',
		display_name VARCHAR(255) NOT NULL DEFAULT '',
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		photo_url VARCHAR(500),
		created_at VARCHAR(40) NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS space_listings (
		id UUID PRIMARY KEY,
		owner_uid VARCHAR(128) NOT NULL,
		space_name VARCHAR(255) NOT NULL,
		location VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		amenities TEXT[] NOT NULL DEFAULT '{}',
		image_urls TEXT[] NOT NULL DEFAULT '{}',
		video_urls TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_space_listings_owner_uid ON space_listings(owner_uid)`,
	`CREATE INDEX IF NOT EXISTS idx_profiles_email ON profiles(email)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
