package league

import "context"

// LeagueStore defines the read-side query surface over the league's reference
// data. Point lookups return docstore.ErrNotFound on a miss; filtered scans
// return empty slices, leaving the 404 decision to the HTTP layer.
type LeagueStore interface {
	ListTeams(ctx context.Context) ([]Team, error)
	GetTeam(ctx context.Context, id string) (Team, error)
	ListTeamsByDivision(ctx context.Context, division string) ([]Team, error)
	ListPlayers(ctx context.Context) ([]Player, error)
	GetPlayer(ctx context.Context, id string) (Player, error)
	ListPlayersByTeam(ctx context.Context, teamID string) ([]Player, error)
	ListConferences(ctx context.Context) ([]Conference, error)
	ListPositionTypes(ctx context.Context) ([]PositionType, error)
	GetCurrentSchedule(ctx context.Context) (Schedule, error)
}
