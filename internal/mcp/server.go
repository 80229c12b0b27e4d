package mcp

// In this file: MCP server construction and transport management.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/mmkit/mmcp"
)

const (
	serverName    = "mcp-mattermost"
	serverVersion = "1.0.0"
)

// Transport selects how the MCP server communicates with its client.
type Transport string

const (
	// TransportStdio uses stdin/stdout for communication (default, suitable
	// for local agent integrations).
	TransportStdio Transport = "stdio"
	// TransportHTTP uses Streamable HTTP transport (suitable for remote
	// agents or when multiple concurrent clients are needed).
	TransportHTTP Transport = "http"
)

// Workspace is the Mattermost facade surface exposed as MCP tools.  The
// production implementation is [mmcp.Client].
type Workspace interface {
	GetMe(ctx context.Context) (*mmcp.User, error)
	GetUser(ctx context.Context, userID string) (*mmcp.User, error)
	GetUserByUsername(ctx context.Context, username string) (*mmcp.User, error)
	SearchUsers(ctx context.Context, term string) ([]mmcp.User, error)

	SearchChannels(ctx context.Context, term string, page, perPage int) ([]mmcp.Channel, error)
	GetChannel(ctx context.Context, channelID string) (*mmcp.Channel, error)
	GetChannelByName(ctx context.Context, name string) (*mmcp.Channel, error)
	GetMyChannels(ctx context.Context) ([]mmcp.Channel, error)

	SearchPosts(ctx context.Context, terms string, page, perPage int) (*mmcp.PostList, error)
	GetPost(ctx context.Context, postID string) (*mmcp.Post, error)
	GetPostsForChannel(ctx context.Context, channelID string, page, perPage int) (*mmcp.PostList, error)
	GetPostsUnread(ctx context.Context, channelID string) (*mmcp.PostList, error)
	CreatePost(ctx context.Context, channelID, message, rootID string) (*mmcp.Post, error)
	GetPostsThread(ctx context.Context, rootID, fromPost string, perPage int) (*mmcp.PostList, error)
	PinPost(ctx context.Context, postID string) error
	UnpinPost(ctx context.Context, postID string) error
	GetPinnedPosts(ctx context.Context, channelID string) (*mmcp.PostList, error)

	AddReaction(ctx context.Context, postID, emojiName string) (*mmcp.Reaction, error)
	RemoveReaction(ctx context.Context, postID, emojiName string) error
	GetReactionsForPost(ctx context.Context, postID string) ([]mmcp.Reaction, error)
}

//go:generate go tool mockgen -source server.go -destination workspace_mock_test.go -package mcp -mock_names Workspace=mockWorkspace

// Server wraps an MCP server and the Mattermost workspace it exposes.
type Server struct {
	mcp        *mcpsrv.MCPServer
	ws         Workspace
	logger     *slog.Logger
	authTokens map[string]string
}

// Option is the signature of the Server option-setting function.
type Option func(*Server)

// WithLogger sets the logger.  A nil logger falls back to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAuthTokens enables bearer-token authentication on the HTTP transport.
// The map is keyed by token, the value is the username used for logging.
// A nil or empty map disables authentication.
func WithAuthTokens(tokens map[string]string) Option {
	return func(s *Server) {
		s.authTokens = tokens
	}
}

// New creates a new MCP server exposing the given workspace.  The server is
// populated with all available tools but does not start listening until one
// of the Serve* methods is called.
func New(ws Workspace, opts ...Option) *Server {
	s := &Server{
		ws:     ws,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	mcpServer := mcpsrv.NewMCPServer(
		serverName,
		serverVersion,
		mcpsrv.WithInstructions(instructions()),
	)
	for _, t := range s.tools() {
		mcpServer.AddTool(t.Tool, t.Handler)
	}
	s.mcp = mcpServer
	return s
}

// instructions returns the server instructions shown to the connecting
// agent.
func instructions() string {
	return `You are connected to a Mattermost MCP server.

Available tools operate on the live Mattermost instance this server is
configured for.  Team-wide tools (search_channels, search_posts,
get_my_channels, get_channel_by_name) act across every configured team and
return a single merged view.  All timestamps are RFC 3339 in UTC; a missing
delete_at or edit_at field means the entity was never deleted or edited.

Write tools (create_post, add_reaction, remove_reaction, pin_post,
unpin_post) act on behalf of the authenticated Mattermost user.`
}

// tools returns all MCP tools that this server exposes.
func (s *Server) tools() []mcpsrv.ServerTool {
	return []mcpsrv.ServerTool{
		s.toolGetMe(),
		s.toolGetUser(),
		s.toolGetUserByUsername(),
		s.toolSearchUsers(),
		s.toolSearchChannels(),
		s.toolGetChannel(),
		s.toolGetChannelByName(),
		s.toolGetMyChannels(),
		s.toolSearchPosts(),
		s.toolGetPost(),
		s.toolGetPostsForChannel(),
		s.toolGetPostsUnread(),
		s.toolCreatePost(),
		s.toolGetPostsThread(),
		s.toolAddReaction(),
		s.toolRemoveReaction(),
		s.toolGetReactionsForPost(),
		s.toolPinPost(),
		s.toolUnpinPost(),
		s.toolGetPinnedPosts(),
	}
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.InfoContext(ctx, "mcp server listening on stdio")
	if err := srv.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server error: %w", err)
	}
	return nil
}

// ServeHTTP runs the MCP server as a Streamable HTTP server on addr until
// ctx is cancelled.  addr should be a host:port string such as
// "127.0.0.1:3002".  When auth tokens are configured, the /mcp endpoint
// requires a matching bearer token.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	streamSrv := mcpsrv.NewStreamableHTTPServer(s.mcp,
		mcpsrv.WithStateLess(true),
	)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Get("/healthcheck", healthcheck)
	r.With(BearerAuth(s.authTokens, s.logger)).Handle("/mcp", streamSrv)

	httpSrv := &http.Server{Addr: addr, Handler: r}

	s.logger.InfoContext(ctx, "mcp server listening on http",
		"addr", addr, "auth", len(s.authTokens) > 0)

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("mcp http server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.InfoContext(ctx, "mcp server shutting down")
		if err := httpSrv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("mcp http server shutdown error: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

func healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// resultText is a helper that wraps text in a successful CallToolResult.
func resultText(text string) *mcplib.CallToolResult {
	return mcplib.NewToolResultText(text)
}

// resultErr is a helper that wraps an error in a CallToolResult with
// IsError=true.
func resultErr(err error) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(err.Error())},
		IsError: true,
	}
}

// resultJSON is a helper that serialises v to JSON and returns a
// CallToolResult.
func resultJSON(v any) (*mcplib.CallToolResult, error) {
	return mcplib.NewToolResultJSON(v)
}

// stringArg extracts a named string argument from a tool call request.
// Returns ("", false) if the argument is absent or not a string.
func stringArg(req mcplib.CallToolRequest, name string) (string, bool) {
	args := req.GetArguments()
	if args == nil {
		return "", false
	}
	v, ok := args[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// intArg extracts a named int argument from a tool call request.  The MCP
// protocol serialises numbers as float64, so we convert accordingly.
func intArg(req mcplib.CallToolRequest, name string, defaultVal int) int {
	args := req.GetArguments()
	if args == nil {
		return defaultVal
	}
	v, ok := args[name]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return defaultVal
}
