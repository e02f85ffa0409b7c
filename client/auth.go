package client

import (
	"context"

	"github.com/termninja/termninja/pkg/types"
)

// Login sends the user's credentials to the API.
// The credentials are only used to build the request body and are not kept by the client.
func (c *Client) Login(ctx context.Context, username, password string) (*types.AuthResponse, error) {
	creds := &types.Credentials{
		Username: username,
		Password: password,
	}

	var resp types.AuthResponse
	if err := c.post(ctx, "login", "/auth", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout ends the current session on the server.
func (c *Client) Logout(ctx context.Context) (*types.LogoutResponse, error) {
	var resp types.LogoutResponse
	if err := c.get(ctx, "logout", "/auth/logout", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
