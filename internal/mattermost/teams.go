package mattermost

import (
	"context"
	"net/url"
)

// GetTeam returns the team with the given id.
func (c *Client) GetTeam(ctx context.Context, teamID string) (*Team, error) {
	var t Team
	if err := c.get(ctx, "/teams/"+teamID, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// GetTeamByName returns the team with the given name.
func (c *Client) GetTeamByName(ctx context.Context, name string) (*Team, error) {
	var t Team
	if err := c.get(ctx, "/teams/name/"+url.PathEscape(name), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// GetMyTeams returns all teams the authenticated user is a member of.
func (c *Client) GetMyTeams(ctx context.Context) ([]Team, error) {
	var tt []Team
	if err := c.get(ctx, "/users/me/teams", &tt); err != nil {
		return nil, err
	}
	return tt, nil
}
