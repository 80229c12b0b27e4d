package mattermost

import "context"

// AddReaction adds an emoji reaction to a post on behalf of r.UserID.
func (c *Client) AddReaction(ctx context.Context, r Reaction) (*Reaction, error) {
	var out Reaction
	if err := c.post(ctx, "/reactions", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveReaction removes the user's emoji reaction from a post.
func (c *Client) RemoveReaction(ctx context.Context, userID, postID, emojiName string) error {
	return c.del(ctx, "/users/"+userID+"/posts/"+postID+"/reactions/"+emojiName)
}

// GetReactions returns all reactions on a post.
func (c *Client) GetReactions(ctx context.Context, postID string) ([]Reaction, error) {
	var rr []Reaction
	if err := c.get(ctx, "/posts/"+postID+"/reactions", &rr); err != nil {
		return nil, err
	}
	return rr, nil
}
