package client

import (
	"context"
	"time"
)

// AuthUser is the profile returned by the auth endpoints.
type AuthUser struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// Login authenticates against the API and persists the returned token,
// so subsequent requests through this client are authenticated.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthUser, error) {
	res, err := Post[authResponse](ctx, c, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	if err := c.tokens.Save(res.Token); err != nil {
		return nil, err
	}
	return &res.User, nil
}

// Signup registers a new account and persists the returned token.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*AuthUser, error) {
	res, err := Post[authResponse](ctx, c, "/api/auth/signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	if err := c.tokens.Save(res.Token); err != nil {
		return nil, err
	}
	return &res.User, nil
}

// Logout discards the stored token. The server keeps no session state.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}
