package client

import (
	"context"
	"net/url"

	"github.com/termninja/termninja/pkg/types"
)

const gamesPath = "/api/v0/games"

func gamePath(slug string) string {
	return gamesPath + "/" + url.PathEscape(slug)
}

// ListGames fetches all game servers known to the lobby.
func (c *Client) ListGames(ctx context.Context) ([]types.Game, error) {
	var games []types.Game
	if err := c.get(ctx, "list_games", gamesPath, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// GetGame fetches a single game server from the lobby.
func (c *Client) GetGame(ctx context.Context, slug string) (*types.Game, error) {
	var game types.Game
	if err := c.get(ctx, "get_game", gamePath(slug), &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// RegisterGame announces a game server to the lobby, creating or updating its entry.
func (c *Client) RegisterGame(ctx context.Context, req *types.RegisterGameRequest) (*types.Game, error) {
	var game types.Game
	if err := c.post(ctx, "register_game", gamesPath, req, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// PingGame tells the lobby that the game server is still alive.
// It satisfies the game.Pinger interface so it can drive a heartbeat loop.
func (c *Client) PingGame(ctx context.Context, slug string) error {
	return c.post(ctx, "ping_game", gamePath(slug)+"/ping", nil, nil)
}
