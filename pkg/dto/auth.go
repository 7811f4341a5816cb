package dto

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// FormErrorsResponse carries per-field validation messages keyed by
// field name, with submission failures under "general".
type FormErrorsResponse struct {
	Errors map[string]string `json:"errors"`
}

type SessionUser struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type ProfileResponse struct {
	UID         string  `json:"uid"`
	Email       string  `json:"email"`
	DisplayName string  `json:"display_name"`
	IsAdmin     bool    `json:"is_admin"`
	PhotoURL    *string `json:"photo_url,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// SessionResponse is the session snapshot as served to clients.
type SessionResponse struct {
	Status  string           `json:"status"`
	Loading bool             `json:"loading"`
	IsAdmin bool             `json:"is_admin"`
	User    *SessionUser     `json:"user,omitempty"`
	Profile *ProfileResponse `json:"profile,omitempty"`
}
