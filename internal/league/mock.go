package league

import (
	"context"
	"sync"

	"github.com/marioniya/nfl-api/internal/docstore"
)

// MockStore is a mock implementation of the LeagueStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	ListTeamsFunc           func(ctx context.Context) ([]Team, error)
	GetTeamFunc             func(ctx context.Context, id string) (Team, error)
	ListTeamsByDivisionFunc func(ctx context.Context, division string) ([]Team, error)
	ListPlayersFunc         func(ctx context.Context) ([]Player, error)
	GetPlayerFunc           func(ctx context.Context, id string) (Player, error)
	ListPlayersByTeamFunc   func(ctx context.Context, teamID string) ([]Player, error)
	ListConferencesFunc     func(ctx context.Context) ([]Conference, error)
	ListPositionTypesFunc   func(ctx context.Context) ([]PositionType, error)
	GetCurrentScheduleFunc  func(ctx context.Context) (Schedule, error)

	// Call records
	GetTeamCalls             []string
	GetPlayerCalls           []string
	ListTeamsByDivisionCalls []string
	ListPlayersByTeamCalls   []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) ListTeams(ctx context.Context) ([]Team, error) {
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx)
	}
	return []Team{}, nil
}

func (m *MockStore) GetTeam(ctx context.Context, id string) (Team, error) {
	m.mu.Lock()
	m.GetTeamCalls = append(m.GetTeamCalls, id)
	m.mu.Unlock()
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(ctx, id)
	}
	return Team{}, docstore.ErrNotFound
}

func (m *MockStore) ListTeamsByDivision(ctx context.Context, division string) ([]Team, error) {
	m.mu.Lock()
	m.ListTeamsByDivisionCalls = append(m.ListTeamsByDivisionCalls, division)
	m.mu.Unlock()
	if m.ListTeamsByDivisionFunc != nil {
		return m.ListTeamsByDivisionFunc(ctx, division)
	}
	return []Team{}, nil
}

func (m *MockStore) ListPlayers(ctx context.Context) ([]Player, error) {
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc(ctx)
	}
	return []Player{}, nil
}

func (m *MockStore) GetPlayer(ctx context.Context, id string) (Player, error) {
	m.mu.Lock()
	m.GetPlayerCalls = append(m.GetPlayerCalls, id)
	m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(ctx, id)
	}
	return Player{}, docstore.ErrNotFound
}

func (m *MockStore) ListPlayersByTeam(ctx context.Context, teamID string) ([]Player, error) {
	m.mu.Lock()
	m.ListPlayersByTeamCalls = append(m.ListPlayersByTeamCalls, teamID)
	m.mu.Unlock()
	if m.ListPlayersByTeamFunc != nil {
		return m.ListPlayersByTeamFunc(ctx, teamID)
	}
	return []Player{}, nil
}

func (m *MockStore) ListConferences(ctx context.Context) ([]Conference, error) {
	if m.ListConferencesFunc != nil {
		return m.ListConferencesFunc(ctx)
	}
	return []Conference{}, nil
}

func (m *MockStore) ListPositionTypes(ctx context.Context) ([]PositionType, error) {
	if m.ListPositionTypesFunc != nil {
		return m.ListPositionTypesFunc(ctx)
	}
	return []PositionType{}, nil
}

func (m *MockStore) GetCurrentSchedule(ctx context.Context) (Schedule, error) {
	if m.GetCurrentScheduleFunc != nil {
		return m.GetCurrentScheduleFunc(ctx)
	}
	return Schedule{Events: []Event{}}, nil
}
