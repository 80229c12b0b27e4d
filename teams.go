package mmcp

// In this file: resolution of the working team set.

import "context"

// Init resolves the working team set from the configuration: explicitly
// configured team ids first, then team names, and if neither is given, all
// teams the authenticated user belongs to.  A configured id or name that
// does not resolve aborts initialisation.  The result is deduplicated
// preserving first-occurrence order and stored for the lifetime of the
// Client.
//
// Init is idempotent in effect but must not be called concurrently with
// itself on the same Client.
func (c *Client) Init(ctx context.Context) error {
	var ids []string
	for _, teamID := range c.cfgTeamIDs {
		team, err := c.api.GetTeam(ctx, teamID)
		if err != nil {
			return &TeamNotFoundError{Ref: teamID, Err: err}
		}
		if team == nil {
			return &TeamNotFoundError{Ref: teamID}
		}
		ids = append(ids, team.ID)
	}
	for _, name := range c.cfgTeamNames {
		team, err := c.api.GetTeamByName(ctx, name)
		if err != nil {
			return &TeamNotFoundError{Ref: name, Err: err}
		}
		if team == nil {
			return &TeamNotFoundError{Ref: name}
		}
		ids = append(ids, team.ID)
	}
	if len(ids) == 0 {
		teams, err := c.api.GetMyTeams(ctx)
		if err != nil {
			return err
		}
		if len(teams) == 0 {
			return ErrNoTeamsFound
		}
		for _, t := range teams {
			ids = append(ids, t.ID)
		}
	}
	c.teamIDs = dedup(ids)
	c.log.DebugContext(ctx, "resolved working team set", "team_ids", c.teamIDs)
	return nil
}

// dedup removes duplicate ids preserving first-occurrence order.
func dedup(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
