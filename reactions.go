package mmcp

import (
	"context"

	"github.com/mmkit/mmcp/internal/mattermost"
)

// AddReaction adds an emoji reaction to a post on behalf of the
// authenticated user.
func (c *Client) AddReaction(ctx context.Context, postID, emojiName string) (*Reaction, error) {
	me, err := c.api.GetMe(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := c.api.AddReaction(ctx, mattermost.Reaction{
		UserID:    me.ID,
		PostID:    postID,
		EmojiName: emojiName,
	})
	if err != nil {
		return nil, err
	}
	r := convertReaction(*raw)
	return &r, nil
}

// RemoveReaction removes the authenticated user's emoji reaction from a
// post.
func (c *Client) RemoveReaction(ctx context.Context, postID, emojiName string) error {
	me, err := c.api.GetMe(ctx)
	if err != nil {
		return err
	}
	return c.api.RemoveReaction(ctx, me.ID, postID, emojiName)
}

// GetReactionsForPost returns all reactions on a post.
func (c *Client) GetReactionsForPost(ctx context.Context, postID string) ([]Reaction, error) {
	raw, err := c.api.GetReactions(ctx, postID)
	if err != nil {
		return nil, err
	}
	out := make([]Reaction, 0, len(raw))
	for _, r := range raw {
		out = append(out, convertReaction(r))
	}
	return out, nil
}
