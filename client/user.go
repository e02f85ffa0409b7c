package client

import (
	"context"
	"fmt"

	"github.com/termninja/termninja/pkg/types"
)

// GetUser fetches the record of a single user.
// ctx is handed to the transport as-is; cancelling it aborts the request.
func (c *Client) GetUser(ctx context.Context, username string) (*types.User, error) {
	var user types.User
	if err := c.get(ctx, "get_user", userPath(username), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetLeaders fetches the leaderboard.
func (c *Client) GetLeaders(ctx context.Context) ([]types.Leader, error) {
	var leaders []types.Leader
	if err := c.get(ctx, "get_leaders", "/user", &leaders); err != nil {
		return nil, err
	}
	return leaders, nil
}

// ListRounds fetches one page of the rounds played by a user.
// page is optional and defaults to 0; only the first value is used.
// The page number is not bounds-checked, the server decides what an out of range page means.
func (c *Client) ListRounds(ctx context.Context, username string, page ...int) ([]types.Round, error) {
	p := 0
	if len(page) > 0 {
		p = page[0]
	}
	path := fmt.Sprintf("%s/rounds?page=%d", userPath(username), p)

	var rounds []types.Round
	if err := c.get(ctx, "list_rounds", path, &rounds); err != nil {
		return nil, err
	}
	return rounds, nil
}

// RefreshPlayToken asks the server for a new play token for the logged-in user.
func (c *Client) RefreshPlayToken(ctx context.Context) (*types.PlayToken, error) {
	var token types.PlayToken
	if err := c.post(ctx, "refresh_play_token", "/user/refresh_play_token", nil, &token); err != nil {
		return nil, err
	}
	return &token, nil
}
