package types

import "time"

// User represents a registered TermNinja player.
// The play token is only present when the record belongs to the caller.
type User struct {
	Username           string     `json:"username"`
	Score              int        `json:"score"`
	PlayToken          string     `json:"play_token,omitempty"`
	PlayTokenExpiresAt *time.Time `json:"play_token_expires_at,omitempty"`
}

// Leader is a single row of the leaderboard.
type Leader struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// PlayToken is the short-lived token a player pastes into a terminal game
// to have the round counted against their account.
type PlayToken struct {
	PlayToken string    `json:"play_token"`
	ExpiresAt time.Time `json:"play_token_expires_at"`
}

// Expired reports whether the token is no longer accepted at the given instant.
func (t *PlayToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// ExpiresIn returns the remaining lifetime of the token, or zero if it already expired.
func (t *PlayToken) ExpiresIn(now time.Time) time.Duration {
	if t.Expired(now) {
		return 0
	}
	return t.ExpiresAt.Sub(now)
}
