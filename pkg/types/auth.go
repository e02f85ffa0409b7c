package types

import "time"

// Credentials is the body of a login request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by the API after a successful login.
type AuthResponse struct {
	Username string `json:"username"`

	// Token is an optional API access token. When present, the CLI stores it and sends it
	// in the `Authorization: Bearer {token}` header on subsequent requests.
	Token string `json:"token,omitempty"`

	PlayToken          string     `json:"play_token,omitempty"`
	PlayTokenExpiresAt *time.Time `json:"play_token_expires_at,omitempty"`
}

// LogoutResponse acknowledges a logout.
type LogoutResponse struct {
	Message string `json:"message"`
}
