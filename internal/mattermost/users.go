package mattermost

import (
	"context"
	"net/url"
)

// GetMe returns the profile of the authenticated user.
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	var u User
	if err := c.get(ctx, "/users/me", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser returns the user with the given id.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	var u User
	if err := c.get(ctx, "/users/"+userID, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByUsername returns the user with the given username.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	if err := c.get(ctx, "/users/username/"+url.PathEscape(username), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

type searchUsersRequest struct {
	Term string `json:"term"`
}

// SearchUsers searches users by the given term across the whole instance.
func (c *Client) SearchUsers(ctx context.Context, term string) ([]User, error) {
	var uu []User
	if err := c.post(ctx, "/users/search", searchUsersRequest{Term: term}, &uu); err != nil {
		return nil, err
	}
	return uu, nil
}
