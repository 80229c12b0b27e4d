package mmcp

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mmkit/mmcp/internal/mattermost"
)

const defPerPage = 100

// SearchChannels searches channels by term across all configured teams.
// The whole resolved team set is passed to the server in a single call.
func (c *Client) SearchChannels(ctx context.Context, term string, page, perPage int) ([]Channel, error) {
	teams, err := c.resolvedTeams()
	if err != nil {
		return nil, err
	}
	if perPage <= 0 {
		perPage = defPerPage
	}
	raw, err := c.api.SearchAllChannels(ctx, mattermost.SearchChannelsRequest{
		Term:    term,
		TeamIDs: teams,
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return nil, err
	}
	out := make([]Channel, 0, len(raw))
	for _, ch := range raw {
		out = append(out, convertChannel(ch))
	}
	return out, nil
}

// GetChannel returns the channel with the given id.
func (c *Client) GetChannel(ctx context.Context, channelID string) (*Channel, error) {
	raw, err := c.api.GetChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	ch := convertChannel(*raw)
	return &ch, nil
}

// GetChannelByName finds a channel by name, trying each configured team in
// resolved order and returning the first match.  A lookup failure for one
// team only means "not in this team" and the next team is tried.
func (c *Client) GetChannelByName(ctx context.Context, name string) (*Channel, error) {
	teams, err := c.resolvedTeams()
	if err != nil {
		return nil, err
	}
	for _, teamID := range teams {
		raw, err := c.api.GetChannelByName(ctx, teamID, name)
		if err != nil {
			c.log.DebugContext(ctx, "channel not found in team, trying next",
				"channel", name, "team_id", teamID, "error", err)
			continue
		}
		ch := convertChannel(*raw)
		return &ch, nil
	}
	return nil, &ChannelNotFoundError{Name: name}
}

// GetMyChannels lists the channels the authenticated user belongs to across
// every configured team.  Results are deduplicated by channel id and
// filtered to open and private channels.
func (c *Client) GetMyChannels(ctx context.Context) ([]Channel, error) {
	teams, err := c.resolvedTeams()
	if err != nil {
		return nil, err
	}
	// One request per team; perTeam is indexed by resolved team position so
	// that the merge below is deterministic regardless of arrival order.
	perTeam := make([][]mattermost.Channel, len(teams))
	eg, gctx := errgroup.WithContext(ctx)
	for i, teamID := range teams {
		eg.Go(func() error {
			cc, err := c.api.GetMyChannels(gctx, teamID)
			if err != nil {
				return err
			}
			perTeam[i] = cc
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Dedup by channel id: position is first-seen, body is last-seen,
	// matching the post-list merge policy.
	var order []string
	byID := make(map[string]mattermost.Channel)
	for _, cc := range perTeam {
		for _, ch := range cc {
			if _, ok := byID[ch.ID]; !ok {
				order = append(order, ch.ID)
			}
			byID[ch.ID] = ch
		}
	}
	out := make([]Channel, 0, len(order))
	for _, id := range order {
		ch := byID[id]
		if ch.Type != mattermost.ChannelOpen && ch.Type != mattermost.ChannelPrivate {
			continue
		}
		out = append(out, convertChannel(ch))
	}
	return out, nil
}
