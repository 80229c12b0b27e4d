package mcp

// In this file: MCP tool definitions and handler implementations.  Every
// handler validates its arguments, calls the workspace, and wraps the
// outcome in a CallToolResult; tool failures are reported through IsError,
// never as protocol-level errors.

import (
	"context"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
)

const (
	defPerPage = 100
	minPerPage = 1
	maxPerPage = 200
)

// clampPerPage keeps a page size within the API-accepted bounds.
func clampPerPage(perPage int) int {
	return max(min(perPage, maxPerPage), minPerPage)
}

// ─── get_me ───────────────────────────────────────────────────────────────────

func (s *Server) toolGetMe() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_me",
		mcplib.WithDescription("Get the profile of the authenticated Mattermost user (the identity all write tools act as)."),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetMe}
}

func (s *Server) handleGetMe(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	me, err := s.ws.GetMe(ctx)
	if err != nil {
		return resultErr(fmt.Errorf("get_me: %w", err)), nil
	}
	return s.json("get_me", me)
}

// ─── get_user ─────────────────────────────────────────────────────────────────

func (s *Server) toolGetUser() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_user",
		mcplib.WithDescription("Get a Mattermost user profile by user ID."),
		mcplib.WithString("user_id",
			mcplib.Description("The Mattermost user ID."),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetUser}
}

func (s *Server) handleGetUser(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	userID, ok := stringArg(req, "user_id")
	if !ok || userID == "" {
		return resultErr(errors.New("get_user: user_id is required")), nil
	}
	user, err := s.ws.GetUser(ctx, userID)
	if err != nil {
		return resultErr(fmt.Errorf("get_user: %w", err)), nil
	}
	return s.json("get_user", user)
}

// ─── get_user_by_username ─────────────────────────────────────────────────────

func (s *Server) toolGetUserByUsername() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_user_by_username",
		mcplib.WithDescription("Get a Mattermost user profile by username (without the leading @)."),
		mcplib.WithString("username",
			mcplib.Description("The Mattermost username."),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetUserByUsername}
}

func (s *Server) handleGetUserByUsername(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	username, ok := stringArg(req, "username")
	if !ok || username == "" {
		return resultErr(errors.New("get_user_by_username: username is required")), nil
	}
	user, err := s.ws.GetUserByUsername(ctx, username)
	if err != nil {
		return resultErr(fmt.Errorf("get_user_by_username: %w", err)), nil
	}
	return s.json("get_user_by_username", user)
}

// ─── search_users ─────────────────────────────────────────────────────────────

func (s *Server) toolSearchUsers() mcpsrv.ServerTool {
	tool := mcplib.NewTool("search_users",
		mcplib.WithDescription("Search Mattermost users by a term matching username, full name or nickname. The search is instance-wide."),
		mcplib.WithString("term",
			mcplib.Description("The search term."),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSearchUsers}
}

func (s *Server) handleSearchUsers(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	term, ok := stringArg(req, "term")
	if !ok || term == "" {
		return resultErr(errors.New("search_users: term is required")), nil
	}
	users, err := s.ws.SearchUsers(ctx, term)
	if err != nil {
		return resultErr(fmt.Errorf("search_users: %w", err)), nil
	}
	return s.json("search_users", users)
}

// ─── search_channels ──────────────────────────────────────────────────────────

func (s *Server) toolSearchChannels() mcpsrv.ServerTool {
	tool := mcplib.NewTool("search_channels",
		mcplib.WithDescription("Search channels by a term across all configured Mattermost teams. Returns a single merged list."),
		mcplib.WithString("term",
			mcplib.Description("The search term matching channel name or display name."),
			mcplib.Required(),
		),
		mcplib.WithNumber("page",
			mcplib.Description("Zero-based result page (default 0)."),
		),
		mcplib.WithNumber("per_page",
			mcplib.Description("Results per page (1-200, default 100)."),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSearchChannels}
}

func (s *Server) handleSearchChannels(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	term, ok := stringArg(req, "term")
	if !ok || term == "" {
		return resultErr(errors.New("search_channels: term is required")), nil
	}
	page := intArg(req, "page", 0)
	perPage := clampPerPage(intArg(req, "per_page", defPerPage))
	channels, err := s.ws.SearchChannels(ctx, term, page, perPage)
	if err != nil {
		return resultErr(fmt.Errorf("search_channels: %w", err)), nil
	}
	return s.json("search_channels", channels)
}

// ─── get_channel ──────────────────────────────────────────────────────────────

func (s *Server) toolGetChannel() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_channel",
		mcplib.WithDescription("Get detailed information about a channel by its ID."),
		mcplib.WithString("channel_id",
			mcplib.Description("The Mattermost channel ID."),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetChannel}
}

func (s *Server) handleGetChannel(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channelID, ok := stringArg(req, "channel_id")
	if !ok || channelID == "" {
		return resultErr(errors.New("get_channel: channel_id is required")), nil
	}
	ch, err := s.ws.GetChannel(ctx, channelID)
	if err != nil {
		return resultErr(fmt.Errorf("get_channel: %w", err)), nil
	}
	return s.json("get_channel", ch)
}

// ─── get_channel_by_name ──────────────────────────────────────────────────────

func (s *Server) toolGetChannelByName() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_channel_by_name",
		mcplib.WithDescription("Find a channel by its name, trying each configured team in order and returning the first match."),
		mcplib.WithString("name",
			mcplib.Description("The channel name (URL slug, not the display name)."),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetChannelByName}
}

func (s *Server) handleGetChannelByName(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	name, ok := stringArg(req, "name")
	if !ok || name == "" {
		return resultErr(errors.New("get_channel_by_name: name is required")), nil
	}
	ch, err := s.ws.GetChannelByName(ctx, name)
	if err != nil {
		return resultErr(fmt.Errorf("get_channel_by_name: %w", err)), nil
	}
	return s.json("get_channel_by_name", ch)
}

// ─── get_my_channels ──────────────────────────────────────────────────────────

func (s *Server) toolGetMyChannels() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_my_channels",
		mcplib.WithDescription("List the open and private channels the authenticated user belongs to, across all configured teams, deduplicated by channel ID."),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetMyChannels}
}

func (s *Server) handleGetMyChannels(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channels, err := s.ws.GetMyChannels(ctx)
	if err != nil {
		return resultErr(fmt.Errorf("get_my_channels: %w", err)), nil
	}
	return s.json("get_my_channels", channels)
}

// ─── search_posts ─────────────────────────────────────────────────────────────

func (s *Server) toolSearchPosts() mcpsrv.ServerTool {
	tool := mcplib.NewTool("search_posts",
		mcplib.WithDescription(`Search posts across all configured Mattermost teams.

The search runs once per configured team and the results are merged into a
single post list deduplicated by post ID.  Supports the standard Mattermost
search modifiers (from:, in:, quoted phrases).`),
		mcplib.WithString("terms",
			mcplib.Description("The search terms."),
			mcplib.Required(),
		),
		mcplib.WithNumber("page",
			mcplib.Description("Zero-based result page (default 0)."),
		),
		mcplib.WithNumber("per_page",
			mcplib.Description("Results per page per team (1-200, default 100)."),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSearchPosts}
}

func (s *Server) handleSearchPosts(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	terms, ok := stringArg(req, "terms")
	if !ok || terms == "" {
		return resultErr(errors.New("search_posts: terms is required")), nil
	}
	page := intArg(req, "page", 0)
	perPage := clampPerPage(intArg(req, "per_page", defPerPage))
	posts, err := s.ws.SearchPosts(ctx, terms, page, perPage)
	if err != nil {
		return resultErr(fmt.Errorf("search_posts: %w", err)), nil
	}
	return s.json("search_posts", posts)
}

// ─── get_post ─────────────────────────────────────────────────────────────────

func (s *Server) toolGetPost() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_post",
		mcplib.WithDescription("Get a single post by its ID."),
		mcplib.WithString("post_id",
			mcplib.Description("The Mattermost post ID."),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetPost}
}

func (s *Server) handleGetPost(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	postID, ok := stringArg(req, "post_id")
	if !ok || postID == "" {
		return resultErr(errors.New("get_post: post_id is required")), nil
	}
	post, err := s.ws.GetPost(ctx, postID)
	if err != nil {
		return resultErr(fmt.Errorf("get_post: %w", err)), nil
	}
	return s.json("get_post", post)
}

// ─── get_posts_for_channel ────────────────────────────────────────────────────

func (s *Server) toolGetPostsForChannel() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_posts_for_channel",
		mcplib.WithDescription("Get a page of recent posts in a channel, newest first.  The 'order' field of the result is the display sequence."),
		mcplib.WithString("channel_id",
			mcplib.Description("The Mattermost channel ID."),
			mcplib.Required(),
		),
		mcplib.WithNumber("page",
			mcplib.Description("Zero-based result page (default 0)."),
		),
		mcplib.WithNumber("per_page",
			mcplib.Description("Posts per page (1-200, default 30)."),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetPostsForChannel}
}

func (s *Server) handleGetPostsForChannel(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channelID, ok := stringArg(req, "channel_id")
	if !ok || channelID == "" {
		return resultErr(errors.New("get_posts_for_channel: channel_id is required")), nil
	}
	page := intArg(req, "page", 0)
	perPage := clampPerPage(intArg(req, "per_page", 30))
	posts, err := s.ws.GetPostsForChannel(ctx, channelID, page, perPage)
	if err != nil {
		return resultErr(fmt.Errorf("get_posts_for_channel: %w", err)), nil
	}
	return s.json("get_posts_for_channel", posts)
}

// ─── get_posts_unread ─────────────────────────────────────────────────────────

func (s *Server) toolGetPostsUnread() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_posts_unread",
		mcplib.WithDescription("Get the unread posts of a channel for the authenticated user."),
		mcplib.WithString("channel_id",
			mcplib.Description("The Mattermost channel ID."),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetPostsUnread}
}

func (s *Server) handleGetPostsUnread(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channelID, ok := stringArg(req, "channel_id")
	if !ok || channelID == "" {
		return resultErr(errors.New("get_posts_unread: channel_id is required")), nil
	}
	posts, err := s.ws.GetPostsUnread(ctx, channelID)
	if err != nil {
		return resultErr(fmt.Errorf("get_posts_unread: %w", err)), nil
	}
	return s.json("get_posts_unread", posts)
}

// ─── create_post ──────────────────────────────────────────────────────────────

func (s *Server) toolCreatePost() mcpsrv.ServerTool {
	tool := mcplib.NewTool("create_post",
		mcplib.WithDescription("Create a new post in a channel, optionally as a reply in a thread."),
		mcplib.WithString("channel_id",
			mcplib.Description("The channel to post in."),
			mcplib.Required(),
		),
		mcplib.WithString("message",
			mcplib.Description("The message text (Markdown)."),
			mcplib.Required(),
		),
		mcplib.WithString("root_id",
			mcplib.Description("ID of the thread root post to reply to.  Omit for a top-level post."),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleCreatePost}
}

func (s *Server) handleCreatePost(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channelID, ok := stringArg(req, "channel_id")
	if !ok || channelID == "" {
		return resultErr(errors.New("create_post: channel_id is required")), nil
	}
	message, ok := stringArg(req, "message")
	if !ok || message == "" {
		return resultErr(errors.New("create_post: message is required")), nil
	}
	rootID, _ := stringArg(req, "root_id")
	post, err := s.ws.CreatePost(ctx, channelID, message, rootID)
	if err != nil {
		return resultErr(fmt.Errorf("create_post: %w", err)), nil
	}
	return s.json("create_post", post)
}

// ─── get_posts_thread ─────────────────────────────────────────────────────────

func (s *Server) toolGetPostsThread() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_posts_thread",
		mcplib.WithDescription("Get the posts of a thread by the ID of its root post.  Use 'from_post' to page upwards through long threads."),
		mcplib.WithString("root_id",
			mcplib.Description("The ID of the thread root post."),
			mcplib.Required(),
		),
		mcplib.WithString("from_post",
			mcplib.Description("Return posts before this post ID.  Use for pagination."),
		),
		mcplib.WithNumber("per_page",
			mcplib.Description("Posts per page (1-200)."),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetPostsThread}
}

func (s *Server) handleGetPostsThread(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	rootID, ok := stringArg(req, "root_id")
	if !ok || rootID == "" {
		return resultErr(errors.New("get_posts_thread: root_id is required")), nil
	}
	fromPost, _ := stringArg(req, "from_post")
	perPage := intArg(req, "per_page", 0)
	if perPage > 0 {
		perPage = clampPerPage(perPage)
	}
	posts, err := s.ws.GetPostsThread(ctx, rootID, fromPost, perPage)
	if err != nil {
		return resultErr(fmt.Errorf("get_posts_thread: %w", err)), nil
	}
	return s.json("get_posts_thread", posts)
}

// ─── add_reaction ─────────────────────────────────────────────────────────────

func (s *Server) toolAddReaction() mcpsrv.ServerTool {
	tool := mcplib.NewTool("add_reaction",
		mcplib.WithDescription("Add an emoji reaction to a post as the authenticated user."),
		mcplib.WithString("post_id",
			mcplib.Description("The post to react to."),
			mcplib.Required(),
		),
		mcplib.WithString("emoji_name",
			mcplib.Description("The emoji name without colons, e.g. \"thumbsup\"."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleAddReaction}
}

func (s *Server) handleAddReaction(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	postID, ok := stringArg(req, "post_id")
	if !ok || postID == "" {
		return resultErr(errors.New("add_reaction: post_id is required")), nil
	}
	emojiName, ok := stringArg(req, "emoji_name")
	if !ok || emojiName == "" {
		return resultErr(errors.New("add_reaction: emoji_name is required")), nil
	}
	reaction, err := s.ws.AddReaction(ctx, postID, emojiName)
	if err != nil {
		return resultErr(fmt.Errorf("add_reaction: %w", err)), nil
	}
	return s.json("add_reaction", reaction)
}

// ─── remove_reaction ──────────────────────────────────────────────────────────

func (s *Server) toolRemoveReaction() mcpsrv.ServerTool {
	tool := mcplib.NewTool("remove_reaction",
		mcplib.WithDescription("Remove the authenticated user's emoji reaction from a post."),
		mcplib.WithString("post_id",
			mcplib.Description("The post to remove the reaction from."),
			mcplib.Required(),
		),
		mcplib.WithString("emoji_name",
			mcplib.Description("The emoji name without colons."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleRemoveReaction}
}

func (s *Server) handleRemoveReaction(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	postID, ok := stringArg(req, "post_id")
	if !ok || postID == "" {
		return resultErr(errors.New("remove_reaction: post_id is required")), nil
	}
	emojiName, ok := stringArg(req, "emoji_name")
	if !ok || emojiName == "" {
		return resultErr(errors.New("remove_reaction: emoji_name is required")), nil
	}
	if err := s.ws.RemoveReaction(ctx, postID, emojiName); err != nil {
		return resultErr(fmt.Errorf("remove_reaction: %w", err)), nil
	}
	return resultText(fmt.Sprintf("Reaction %q removed from post %s.", emojiName, postID)), nil
}

// ─── get_reactions_for_post ───────────────────────────────────────────────────

func (s *Server) toolGetReactionsForPost() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_reactions_for_post",
		mcplib.WithDescription("List all emoji reactions on a post."),
		mcplib.WithString("post_id",
			mcplib.Description("The Mattermost post ID."),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetReactionsForPost}
}

func (s *Server) handleGetReactionsForPost(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	postID, ok := stringArg(req, "post_id")
	if !ok || postID == "" {
		return resultErr(errors.New("get_reactions_for_post: post_id is required")), nil
	}
	reactions, err := s.ws.GetReactionsForPost(ctx, postID)
	if err != nil {
		return resultErr(fmt.Errorf("get_reactions_for_post: %w", err)), nil
	}
	return s.json("get_reactions_for_post", reactions)
}

// ─── pin_post ─────────────────────────────────────────────────────────────────

func (s *Server) toolPinPost() mcpsrv.ServerTool {
	tool := mcplib.NewTool("pin_post",
		mcplib.WithDescription("Pin a post to its channel."),
		mcplib.WithString("post_id",
			mcplib.Description("The post to pin."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handlePinPost}
}

func (s *Server) handlePinPost(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	postID, ok := stringArg(req, "post_id")
	if !ok || postID == "" {
		return resultErr(errors.New("pin_post: post_id is required")), nil
	}
	if err := s.ws.PinPost(ctx, postID); err != nil {
		return resultErr(fmt.Errorf("pin_post: %w", err)), nil
	}
	return resultText(fmt.Sprintf("Post %s pinned.", postID)), nil
}

// ─── unpin_post ───────────────────────────────────────────────────────────────

func (s *Server) toolUnpinPost() mcpsrv.ServerTool {
	tool := mcplib.NewTool("unpin_post",
		mcplib.WithDescription("Unpin a post from its channel."),
		mcplib.WithString("post_id",
			mcplib.Description("The post to unpin."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleUnpinPost}
}

func (s *Server) handleUnpinPost(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	postID, ok := stringArg(req, "post_id")
	if !ok || postID == "" {
		return resultErr(errors.New("unpin_post: post_id is required")), nil
	}
	if err := s.ws.UnpinPost(ctx, postID); err != nil {
		return resultErr(fmt.Errorf("unpin_post: %w", err)), nil
	}
	return resultText(fmt.Sprintf("Post %s unpinned.", postID)), nil
}

// ─── get_pinned_posts ─────────────────────────────────────────────────────────

func (s *Server) toolGetPinnedPosts() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_pinned_posts",
		mcplib.WithDescription("List the pinned posts of a channel."),
		mcplib.WithString("channel_id",
			mcplib.Description("The Mattermost channel ID."),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetPinnedPosts}
}

func (s *Server) handleGetPinnedPosts(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channelID, ok := stringArg(req, "channel_id")
	if !ok || channelID == "" {
		return resultErr(errors.New("get_pinned_posts: channel_id is required")), nil
	}
	posts, err := s.ws.GetPinnedPosts(ctx, channelID)
	if err != nil {
		return resultErr(fmt.Errorf("get_pinned_posts: %w", err)), nil
	}
	return s.json("get_pinned_posts", posts)
}

// json serialises v and reports a serialisation failure as a tool error.
func (s *Server) json(tool string, v any) (*mcplib.CallToolResult, error) {
	result, err := resultJSON(v)
	if err != nil {
		return resultErr(fmt.Errorf("%s: serialise: %w", tool, err)), nil
	}
	return result, nil
}
