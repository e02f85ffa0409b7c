// Package internal provides internal utility functionality for the TermNinja lobby.
package internal

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

// GameSlug derives the URL-safe identifier of a game from its server name.
// The slug is the key a game is stored and looked up by.
func GameSlug(serverName string) string {
	return slug.Make(strings.TrimSpace(serverName))
}

// ValidateServerName checks that a game server name can be turned into a usable slug.
func ValidateServerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("server name is required")
	}
	if GameSlug(name) == "" {
		return fmt.Errorf("server name %q does not contain any usable characters", name)
	}
	return nil
}

// ValidatePort checks that port is a usable TCP port number.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port should be between 1 and 65535, got %d", port)
	}
	return nil
}
