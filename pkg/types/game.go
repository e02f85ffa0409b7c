package types

import "time"

// Game describes a terminal game server listed in the lobby.
type Game struct {
	Slug        string    `json:"slug"`
	ServerName  string    `json:"server_name"`
	Description string    `json:"description"`
	Port        int       `json:"port"`
	PlayerCount int       `json:"player_count"`
	LastPing    time.Time `json:"last_ping"`

	// Online is computed by the lobby from LastPing at the time of the request.
	Online bool `json:"online"`
}

// RegisterGameRequest is sent by a game server when it starts up.
// Registering an already known server name updates the existing entry.
type RegisterGameRequest struct {
	ServerName  string `json:"server_name"`
	Description string `json:"description"`
	Port        int    `json:"port"`
	PlayerCount int    `json:"player_count,omitempty"`
}

// ServerMetadata contains information about the lobby server.
type ServerMetadata struct {
	Version string `json:"version"`
}
