package mmcp

import (
	"errors"
	"fmt"
)

// ErrNoTeamsFound is returned by Init when team auto-discovery yields no
// teams for the authenticated user.
var ErrNoTeamsFound = errors.New("no teams found for the current user")

// ErrNoTeamsConfigured is returned by team-scoped operations invoked before
// a successful Init.
var ErrNoTeamsConfigured = errors.New("no teams configured")

// TeamNotFoundError is returned by Init when an explicitly configured team
// id or name cannot be resolved.  The underlying Err carries the API error.
type TeamNotFoundError struct {
	Ref string // the configured team id or name
	Err error
}

func (e *TeamNotFoundError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("team %q not found or not accessible", e.Ref)
	}
	return fmt.Sprintf("team %q not found or not accessible: %s", e.Ref, e.Err)
}

func (e *TeamNotFoundError) Unwrap() error {
	return e.Err
}

// ChannelNotFoundError is returned by GetChannelByName when no configured
// team contains a channel with the requested name.
type ChannelNotFoundError struct {
	Name string
}

func (e *ChannelNotFoundError) Error() string {
	return fmt.Sprintf("channel %q not found in any configured team", e.Name)
}
