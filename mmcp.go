// Package mmcp bridges a Mattermost instance to MCP agents.  It wraps the
// Mattermost REST API with a working set of teams resolved once at
// initialisation, and aggregates team-scoped reads (channel listing, post
// search) across that set into a single deduplicated view.
package mmcp

import (
	"context"
	"log/slog"

	"github.com/mmkit/mmcp/internal/config"
	"github.com/mmkit/mmcp/internal/mattermost"
)

//go:generate go tool mockgen -source mmcp.go -destination api_mock_test.go -package mmcp -mock_names API=mockAPI

// API is the Mattermost REST client surface used by the Client.  It exists
// for the sole purpose of mocking in tests (see api_mock_test.go); the
// production implementation is [mattermost.Client].
type API interface {
	GetTeam(ctx context.Context, teamID string) (*mattermost.Team, error)
	GetTeamByName(ctx context.Context, name string) (*mattermost.Team, error)
	GetMyTeams(ctx context.Context) ([]mattermost.Team, error)

	GetMe(ctx context.Context) (*mattermost.User, error)
	GetUser(ctx context.Context, userID string) (*mattermost.User, error)
	GetUserByUsername(ctx context.Context, username string) (*mattermost.User, error)
	SearchUsers(ctx context.Context, term string) ([]mattermost.User, error)

	SearchAllChannels(ctx context.Context, req mattermost.SearchChannelsRequest) ([]mattermost.Channel, error)
	GetChannel(ctx context.Context, channelID string) (*mattermost.Channel, error)
	GetChannelByName(ctx context.Context, teamID, name string) (*mattermost.Channel, error)
	GetMyChannels(ctx context.Context, teamID string) ([]mattermost.Channel, error)

	SearchPosts(ctx context.Context, teamID string, req mattermost.SearchPostsRequest) (*mattermost.PostList, error)
	GetPost(ctx context.Context, postID string) (*mattermost.Post, error)
	GetPosts(ctx context.Context, channelID string, page, perPage int) (*mattermost.PostList, error)
	GetPostsUnread(ctx context.Context, channelID, userID string, limitAfter, limitBefore int, skipFetchThreads bool) (*mattermost.PostList, error)
	CreatePost(ctx context.Context, draft mattermost.PostDraft) (*mattermost.Post, error)
	GetPostThread(ctx context.Context, rootID string, opt mattermost.ThreadOptions) (*mattermost.PostList, error)
	PinPost(ctx context.Context, postID string) error
	UnpinPost(ctx context.Context, postID string) error
	GetPinnedPosts(ctx context.Context, channelID string) (*mattermost.PostList, error)

	AddReaction(ctx context.Context, r mattermost.Reaction) (*mattermost.Reaction, error)
	RemoveReaction(ctx context.Context, userID, postID, emojiName string) error
	GetReactions(ctx context.Context, postID string) ([]mattermost.Reaction, error)
}

// Client is the aggregating facade over the Mattermost API.  Zero value is
// not usable, create one with New and call Init before any team-scoped
// operation.  The resolved team set written by Init is immutable for the
// lifetime of the Client; concurrent calls to different operations on an
// initialised Client are safe, concurrent Init calls are not.
type Client struct {
	api API
	log *slog.Logger

	cfgTeamIDs   []string
	cfgTeamNames []string

	// teamIDs is the resolved working team set, written once by Init.
	teamIDs []string
}

// Option is the signature of the option-setting function.
type Option func(*Client)

// WithLogger sets the logger.  If this option is not given, the client logs
// with slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithAPIClient sets the Mattermost API client to use.  When given, the URL
// and token of the configuration are ignored.
func WithAPIClient(api API) Option {
	return func(c *Client) {
		c.api = api
	}
}

// New creates a new Client from the configuration.  The returned Client has
// no resolved teams yet; call Init to establish the working team set.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	c := &Client{
		log:          slog.Default(),
		cfgTeamIDs:   cfg.TeamIDs,
		cfgTeamNames: cfg.TeamNames,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.api == nil {
		api, err := mattermost.New(cfg.URL, cfg.Token)
		if err != nil {
			return nil, err
		}
		c.api = api
	}
	return c, nil
}

// TeamIDs returns a copy of the resolved working team set.
func (c *Client) TeamIDs() []string {
	out := make([]string, len(c.teamIDs))
	copy(out, c.teamIDs)
	return out
}

// resolvedTeams guards team-scoped operations: it returns the resolved team
// set, or ErrNoTeamsConfigured when Init has not run successfully.
func (c *Client) resolvedTeams() ([]string, error) {
	if len(c.teamIDs) == 0 {
		return nil, ErrNoTeamsConfigured
	}
	return c.teamIDs, nil
}
