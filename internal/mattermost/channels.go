package mattermost

import (
	"context"
	"net/url"
)

// SearchAllChannels searches channels by term.  The search is scoped to the
// teams listed in req.TeamIDs; with an empty list the server searches every
// team visible to the user.
func (c *Client) SearchAllChannels(ctx context.Context, req SearchChannelsRequest) ([]Channel, error) {
	var cc []Channel
	if err := c.post(ctx, "/channels/search", req, &cc); err != nil {
		return nil, err
	}
	return cc, nil
}

// GetChannel returns the channel with the given id.
func (c *Client) GetChannel(ctx context.Context, channelID string) (*Channel, error) {
	var ch Channel
	if err := c.get(ctx, "/channels/"+channelID, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// GetChannelByName returns the channel with the given name within a team.
func (c *Client) GetChannelByName(ctx context.Context, teamID, name string) (*Channel, error) {
	var ch Channel
	if err := c.get(ctx, "/teams/"+teamID+"/channels/name/"+url.PathEscape(name), &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// GetMyChannels returns the channels of a team that the authenticated user
// is a member of.
func (c *Client) GetMyChannels(ctx context.Context, teamID string) ([]Channel, error) {
	var cc []Channel
	if err := c.get(ctx, "/users/me/teams/"+teamID+"/channels", &cc); err != nil {
		return nil, err
	}
	return cc, nil
}
