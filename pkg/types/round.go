package types

import "time"

// Round is one finished game played by a user.
type Round struct {
	ID         int       `json:"id"`
	GameSlug   string    `json:"game_slug"`
	ServerName string    `json:"server_name"`
	Score      int       `json:"score"`
	Message    string    `json:"message,omitempty"`
	PlayedAt   time.Time `json:"played_at"`
}
