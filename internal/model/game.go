package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GameAttributes holds optional, schema-less settings announced by a game server.
type GameAttributes struct {
	// PlayerCount is the number of players a single round needs.
	PlayerCount int `json:"player_count,omitempty"`
}

// Game represents a terminal game server registered in the lobby.
type Game struct {
	gorm.Model

	// Slug is derived from ServerName and identifies the game in URLs.
	Slug string `json:"slug" gorm:"uniqueIndex;not null"`

	ServerName  string `json:"server_name" gorm:"not null"`
	Description string `json:"description"`

	// Port is the TCP port players connect to with netcat.
	Port int `json:"port" gorm:"not null"`

	// Attributes contains the JSON representation of GameAttributes.
	Attributes datatypes.JSON `json:"attributes" gorm:"type:jsonb"`

	// LastPing is refreshed every time the game server sends a heartbeat.
	LastPing time.Time `json:"last_ping"`
}

// DecodeAttributes returns the game's attributes.
// A game without attributes yields the zero value.
func (g *Game) DecodeAttributes() (GameAttributes, error) {
	var attrs GameAttributes
	if len(g.Attributes) == 0 {
		return attrs, nil
	}
	if err := json.Unmarshal(g.Attributes, &attrs); err != nil {
		return attrs, err
	}
	return attrs, nil
}

// SetAttributes stores attrs on the game.
func (g *Game) SetAttributes(attrs GameAttributes) error {
	data, err := json.Marshal(attrs)
	if err != nil {
		return err
	}
	g.Attributes = datatypes.JSON(data)
	return nil
}
