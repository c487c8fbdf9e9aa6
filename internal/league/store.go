package league

import (
	"context"
	"fmt"

	"github.com/marioniya/nfl-api/internal/docstore"
)

// store resolves each query against the document store and normalizes the
// results. It holds no state of its own; every call re-reads the store.
type store struct {
	docs docstore.Store
}

// New creates a new LeagueStore backed by the given document store.
func New(docs docstore.Store) LeagueStore {
	return &store{docs: docs}
}

func (s *store) ListTeams(ctx context.Context) ([]Team, error) {
	docs, err := s.docs.GetAll(ctx, TeamsCollection)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	teams := make([]Team, 0, len(docs))
	for _, doc := range docs {
		teams = append(teams, TeamFromDoc(doc))
	}
	return teams, nil
}

func (s *store) GetTeam(ctx context.Context, id string) (Team, error) {
	doc, err := s.docs.Get(ctx, TeamsCollection, id)
	if err != nil {
		return Team{}, fmt.Errorf("get team %q: %w", id, err)
	}
	return TeamFromDoc(doc), nil
}

func (s *store) ListTeamsByDivision(ctx context.Context, division string) ([]Team, error) {
	docs, err := s.docs.Query(ctx, TeamsCollection, "division", division)
	if err != nil {
		return nil, fmt.Errorf("list teams by division %q: %w", division, err)
	}
	teams := make([]Team, 0, len(docs))
	for _, doc := range docs {
		teams = append(teams, TeamFromDoc(doc))
	}
	return teams, nil
}

func (s *store) ListPlayers(ctx context.Context) ([]Player, error) {
	docs, err := s.docs.GetAll(ctx, PlayersCollection)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	players := make([]Player, 0, len(docs))
	for _, doc := range docs {
		players = append(players, PlayerFromDoc(doc))
	}
	return players, nil
}

func (s *store) GetPlayer(ctx context.Context, id string) (Player, error) {
	doc, err := s.docs.Get(ctx, PlayersCollection, id)
	if err != nil {
		return Player{}, fmt.Errorf("get player %q: %w", id, err)
	}
	return PlayerFromDoc(doc), nil
}

func (s *store) ListPlayersByTeam(ctx context.Context, teamID string) ([]Player, error) {
	docs, err := s.docs.Query(ctx, PlayersCollection, "team", teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team %q: %w", teamID, err)
	}
	players := make([]Player, 0, len(docs))
	for _, doc := range docs {
		players = append(players, PlayerFromDoc(doc))
	}
	return players, nil
}

func (s *store) ListConferences(ctx context.Context) ([]Conference, error) {
	docs, err := s.docs.GetAll(ctx, ConferencesCollection)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}
	conferences := make([]Conference, 0, len(docs))
	for _, doc := range docs {
		conferences = append(conferences, ConferenceFromDoc(doc))
	}
	return conferences, nil
}

func (s *store) ListPositionTypes(ctx context.Context) ([]PositionType, error) {
	docs, err := s.docs.GetAll(ctx, PositionTypesCollection)
	if err != nil {
		return nil, fmt.Errorf("list position types: %w", err)
	}
	positionTypes := make([]PositionType, 0, len(docs))
	for _, doc := range docs {
		positionTypes = append(positionTypes, PositionTypeFromDoc(doc))
	}
	return positionTypes, nil
}

// GetCurrentSchedule reads the current week document. The collection holds at
// most one document; an empty collection is a valid empty schedule, never an
// error.
func (s *store) GetCurrentSchedule(ctx context.Context) (Schedule, error) {
	docs, err := s.docs.GetAll(ctx, ScheduleCollection)
	if err != nil {
		return Schedule{}, fmt.Errorf("get schedule: %w", err)
	}
	if len(docs) == 0 {
		return Schedule{Events: []Event{}}, nil
	}
	return ScheduleFromDoc(docs[0]), nil
}
