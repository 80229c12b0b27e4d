package mmcp

import "context"

// GetMe returns the authenticated user.
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	me, err := c.api.GetMe(ctx)
	if err != nil {
		return nil, err
	}
	u := convertUser(*me)
	return &u, nil
}

// GetUser returns the user with the given id.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	raw, err := c.api.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	u := convertUser(*raw)
	return &u, nil
}

// GetUserByUsername returns the user with the given username.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	raw, err := c.api.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	u := convertUser(*raw)
	return &u, nil
}

// SearchUsers searches users by term.  The search is instance-wide, not
// limited to the configured teams.
func (c *Client) SearchUsers(ctx context.Context, term string) ([]User, error) {
	raw, err := c.api.SearchUsers(ctx, term)
	if err != nil {
		return nil, err
	}
	out := make([]User, 0, len(raw))
	for _, u := range raw {
		out = append(out, convertUser(u))
	}
	return out, nil
}
