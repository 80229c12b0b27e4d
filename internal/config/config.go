// Package config loads and validates the server configuration from
// environment variables.  Configuration is read once at process start and
// passed by reference into the facade; nothing in the core consults the
// environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rusq/osenv/v2"
)

// Environment variables recognised by FromEnv.
const (
	EnvURL        = "MCP_MATTERMOST_URL"
	EnvToken      = "MCP_MATTERMOST_TOKEN"
	EnvTeamNames  = "MCP_MATTERMOST_TEAM_NAME"
	EnvTeamIDs    = "MCP_MATTERMOST_TEAM_ID"
	EnvAuthTokens = "MCP_AUTH_TOKENS"
)

var validate = validator.New()

// Config holds the Mattermost connection parameters and the optional
// bearer-token map for the HTTP transport.
type Config struct {
	// URL is the base URL of the Mattermost instance.
	URL string `validate:"required,url"`
	// Token is the personal access token or bot token.
	Token string `validate:"required"`
	// TeamNames and TeamIDs select the working teams.  When both are
	// empty, all teams of the authenticated user are used.
	TeamNames []string `validate:"omitempty,dive,min=1"`
	TeamIDs   []string `validate:"omitempty,dive,min=1"`
	// AuthTokens maps bearer token to username for the HTTP transport.
	// Nil disables authentication.
	AuthTokens map[string]string
}

// FromEnv loads the configuration from the environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		URL:        osenv.Value(EnvURL, ""),
		Token:      osenv.Secret(EnvToken, ""),
		TeamNames:  splitList(osenv.Value(EnvTeamNames, "")),
		TeamIDs:    splitList(osenv.Value(EnvTeamIDs, "")),
		AuthTokens: ParseAuthTokens(osenv.Secret(EnvAuthTokens, "")),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for completeness.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// splitList splits a comma-separated value into trimmed non-empty items.
// Returns nil for an empty value.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ParseAuthTokens parses the bearer-token list in "username:token" pairs
// separated by commas.  Malformed pairs are skipped with a warning.  Returns
// nil when the value is empty or contains no valid entries, which disables
// authentication.
func ParseAuthTokens(s string) map[string]string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	tokens := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		username, token, found := strings.Cut(pair, ":")
		username, token = strings.TrimSpace(username), strings.TrimSpace(token)
		if !found || username == "" || token == "" {
			slog.Warn("invalid auth token entry, expected \"username:token\"", "entry", pair)
			continue
		}
		tokens[token] = username
	}
	if len(tokens) == 0 {
		slog.Warn("auth tokens are set but no valid entries found, authentication disabled")
		return nil
	}
	return tokens
}
