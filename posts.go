package mmcp

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mmkit/mmcp/internal/mattermost"
)

const (
	defPostsPerPage = 30
	// defUnreadLimitAfter mirrors the webapp client default for the unread
	// posts window.
	defUnreadLimitAfter = 30
)

// SearchPosts searches posts by terms across all configured teams.  One
// search request is issued per team concurrently; the per-team results are
// merged into a single PostList deduplicated by post id.
func (c *Client) SearchPosts(ctx context.Context, terms string, page, perPage int) (*PostList, error) {
	teams, err := c.resolvedTeams()
	if err != nil {
		return nil, err
	}
	if perPage <= 0 {
		perPage = defPerPage
	}
	lists := make([]*mattermost.PostList, len(teams))
	eg, gctx := errgroup.WithContext(ctx)
	for i, teamID := range teams {
		eg.Go(func() error {
			pl, err := c.api.SearchPosts(gctx, teamID, mattermost.SearchPostsRequest{
				Terms:   terms,
				Page:    page,
				PerPage: perPage,
			})
			if err != nil {
				return err
			}
			lists[i] = pl
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return convertPostList(mergePostLists(lists)), nil
}

// mergePostLists combines per-team search results into a single PostList.
// A post id keeps the position of its first occurrence in Order, while its
// body is overwritten by the last list that contains it.  Input lists are
// walked in resolved-team order, so the merge is deterministic.
func mergePostLists(lists []*mattermost.PostList) *mattermost.PostList {
	merged := &mattermost.PostList{
		Order: []string{},
		Posts: make(map[string]mattermost.Post),
	}
	for _, pl := range lists {
		if pl == nil {
			continue
		}
		for _, id := range pl.Order {
			if _, seen := merged.Posts[id]; !seen {
				merged.Order = append(merged.Order, id)
			}
			merged.Posts[id] = pl.Posts[id]
		}
	}
	return merged
}

// GetPost returns the post with the given id.
func (c *Client) GetPost(ctx context.Context, postID string) (*Post, error) {
	raw, err := c.api.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	p := convertPost(*raw)
	return &p, nil
}

// GetPostsForChannel returns a page of recent posts in a channel.
func (c *Client) GetPostsForChannel(ctx context.Context, channelID string, page, perPage int) (*PostList, error) {
	if perPage <= 0 {
		perPage = defPostsPerPage
	}
	raw, err := c.api.GetPosts(ctx, channelID, page, perPage)
	if err != nil {
		return nil, err
	}
	return convertPostList(raw), nil
}

// GetPostsUnread returns the unread posts of a channel for the
// authenticated user.
func (c *Client) GetPostsUnread(ctx context.Context, channelID string) (*PostList, error) {
	me, err := c.api.GetMe(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := c.api.GetPostsUnread(ctx, channelID, me.ID, defUnreadLimitAfter, 0, true)
	if err != nil {
		return nil, err
	}
	return convertPostList(raw), nil
}

// CreatePost creates a post in a channel.  rootID may be empty for a
// top-level post, or the id of a thread root to reply to.
func (c *Client) CreatePost(ctx context.Context, channelID, message, rootID string) (*Post, error) {
	c.log.DebugContext(ctx, "creating post", "channel_id", channelID, "root_id", rootID)
	raw, err := c.api.CreatePost(ctx, mattermost.PostDraft{
		ChannelID: channelID,
		Message:   message,
		RootID:    rootID,
	})
	if err != nil {
		c.log.ErrorContext(ctx, "create post failed", "channel_id", channelID, "error", err)
		return nil, err
	}
	p := convertPost(*raw)
	return &p, nil
}

// GetPostsThread returns a page of the thread rooted at rootID, walking
// upwards from fromPost when given.
func (c *Client) GetPostsThread(ctx context.Context, rootID, fromPost string, perPage int) (*PostList, error) {
	raw, err := c.api.GetPostThread(ctx, rootID, mattermost.ThreadOptions{
		Direction: "up",
		FromPost:  fromPost,
		PerPage:   perPage,
	})
	if err != nil {
		return nil, err
	}
	return convertPostList(raw), nil
}

// PinPost pins a post to its channel.
func (c *Client) PinPost(ctx context.Context, postID string) error {
	return c.api.PinPost(ctx, postID)
}

// UnpinPost unpins a post from its channel.
func (c *Client) UnpinPost(ctx context.Context, postID string) error {
	return c.api.UnpinPost(ctx, postID)
}

// GetPinnedPosts returns the pinned posts of a channel.
func (c *Client) GetPinnedPosts(ctx context.Context, channelID string) (*PostList, error) {
	raw, err := c.api.GetPinnedPosts(ctx, channelID)
	if err != nil {
		return nil, err
	}
	return convertPostList(raw), nil
}
