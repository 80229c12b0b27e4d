package mattermost

import (
	"context"
	"strconv"
)

// SearchPosts searches posts within a single team.
func (c *Client) SearchPosts(ctx context.Context, teamID string, req SearchPostsRequest) (*PostList, error) {
	var pl PostList
	if err := c.post(ctx, "/teams/"+teamID+"/posts/search", req, &pl); err != nil {
		return nil, err
	}
	return &pl, nil
}

// GetPost returns the post with the given id.
func (c *Client) GetPost(ctx context.Context, postID string) (*Post, error) {
	var p Post
	if err := c.get(ctx, "/posts/"+postID, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPosts returns a page of posts for a channel, newest first.
func (c *Client) GetPosts(ctx context.Context, channelID string, page, perPage int) (*PostList, error) {
	q := values(map[string]string{
		"page":     strconv.Itoa(page),
		"per_page": strconv.Itoa(perPage),
	})
	var pl PostList
	if err := c.get(ctx, "/channels/"+channelID+"/posts?"+q.Encode(), &pl); err != nil {
		return nil, err
	}
	return &pl, nil
}

// GetPostsUnread returns posts around the oldest unread post of a channel
// for the given user.
func (c *Client) GetPostsUnread(ctx context.Context, channelID, userID string, limitAfter, limitBefore int, skipFetchThreads bool) (*PostList, error) {
	q := values(map[string]string{
		"limit_after":      strconv.Itoa(limitAfter),
		"limit_before":     strconv.Itoa(limitBefore),
		"skipFetchThreads": strconv.FormatBool(skipFetchThreads),
	})
	var pl PostList
	if err := c.get(ctx, "/users/"+userID+"/channels/"+channelID+"/posts/unread?"+q.Encode(), &pl); err != nil {
		return nil, err
	}
	return &pl, nil
}

// CreatePost creates a new post.
func (c *Client) CreatePost(ctx context.Context, draft PostDraft) (*Post, error) {
	var p Post
	if err := c.post(ctx, "/posts", draft, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPostThread returns a page of the thread rooted at rootID.
func (c *Client) GetPostThread(ctx context.Context, rootID string, opt ThreadOptions) (*PostList, error) {
	pairs := map[string]string{
		"direction": opt.Direction,
		"fromPost":  opt.FromPost,
	}
	if opt.PerPage > 0 {
		pairs["perPage"] = strconv.Itoa(opt.PerPage)
	}
	var pl PostList
	if err := c.get(ctx, "/posts/"+rootID+"/thread?"+values(pairs).Encode(), &pl); err != nil {
		return nil, err
	}
	return &pl, nil
}

// PinPost pins a post to its channel.
func (c *Client) PinPost(ctx context.Context, postID string) error {
	return c.post(ctx, "/posts/"+postID+"/pin", nil, nil)
}

// UnpinPost unpins a post from its channel.
func (c *Client) UnpinPost(ctx context.Context, postID string) error {
	return c.post(ctx, "/posts/"+postID+"/unpin", nil, nil)
}

// GetPinnedPosts returns the pinned posts of a channel.
func (c *Client) GetPinnedPosts(ctx context.Context, channelID string) (*PostList, error) {
	var pl PostList
	if err := c.get(ctx, "/channels/"+channelID+"/pinned", &pl); err != nil {
		return nil, err
	}
	return &pl, nil
}
