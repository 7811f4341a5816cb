// Package profile owns the application-side metadata about a principal:
// the profile record persisted in the document store, and the reconciler
// that keeps authentication usable when that store is degraded.
package profile

// Profile is the application-owned record for one principal. UID matches
// the identity provider's identifier; at most one profile exists per UID.
type Profile struct {
	UID         string  `json:"uid"`
	Email       string  `json:"email"`
	DisplayName string  `json:"display_name"`
	IsAdmin     bool    `json:"is_admin"`
	PhotoURL    *string `json:"photo_url,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}
