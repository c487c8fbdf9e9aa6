package league

import (
	"context"
	"errors"
	"testing"

	"github.com/marioniya/nfl-api/internal/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore seeds an in-memory document store with a small league.
func setupTestStore(t *testing.T) LeagueStore {
	t.Helper()
	docs, err := docstore.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, docs.Close()) })

	ctx := context.Background()
	require.NoError(t, docs.PutAll(ctx, TeamsCollection, []docstore.Document{
		{ID: "KC", Data: map[string]any{"name": "Chiefs", "division": "AFC West", "owners": []any{"Clark Hunt"}}},
		{ID: "LV", Data: map[string]any{"name": "Raiders", "division": "AFC West"}},
		{ID: "SF", Data: map[string]any{"name": "49ers", "division": "NFC West"}},
	}))
	require.NoError(t, docs.PutAll(ctx, PlayersCollection, []docstore.Document{
		{ID: "mahomes", Data: map[string]any{"fullName": "Patrick Mahomes", "team": "KC"}},
		{ID: "kelce", Data: map[string]any{"fullName": "Travis Kelce", "team": "KC"}},
		{ID: "purdy", Data: map[string]any{"fullName": "Brock Purdy", "team": "SF"}},
	}))
	require.NoError(t, docs.Put(ctx, ConferencesCollection, docstore.Document{
		ID: "afc", Data: map[string]any{"name": "American Football Conference", "abbreviation": "AFC"},
	}))
	require.NoError(t, docs.Put(ctx, PositionTypesCollection, docstore.Document{
		ID: "offense", Data: map[string]any{"name": "Offense", "positions": []any{"Quarterback"}},
	}))

	return New(docs)
}

func TestListTeams(t *testing.T) {
	store := setupTestStore(t)

	teams, err := store.ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 3)
	for _, team := range teams {
		assert.NotEmpty(t, team.ID)
	}
}

func TestGetTeam(t *testing.T) {
	store := setupTestStore(t)

	team, err := store.GetTeam(context.Background(), "KC")
	require.NoError(t, err)
	assert.Equal(t, "KC", team.ID)
	assert.Equal(t, "Chiefs", team.Name)
}

func TestGetTeamMiss(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetTeam(context.Background(), "XX")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestListTeamsByDivision(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	teams, err := store.ListTeamsByDivision(ctx, "AFC West")
	require.NoError(t, err)
	require.Len(t, teams, 2)

	// A division nobody plays in is an empty result, not an error.
	teams, err = store.ListTeamsByDivision(ctx, "AFC South")
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestListTeamsByDivisionMatchesClientSideFilter(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	filtered, err := store.ListTeamsByDivision(ctx, "AFC West")
	require.NoError(t, err)

	all, err := store.ListTeams(ctx)
	require.NoError(t, err)
	manual := []Team{}
	for _, team := range all {
		if team.Division == "AFC West" {
			manual = append(manual, team)
		}
	}

	assert.ElementsMatch(t, manual, filtered)
}

func TestListPlayersByTeam(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	players, err := store.ListPlayersByTeam(ctx, "KC")
	require.NoError(t, err)
	require.Len(t, players, 2)
	for _, player := range players {
		assert.Equal(t, "KC", player.Team)
	}

	// A team id that matches nothing (even a dangling reference) is a valid
	// empty result.
	players, err = store.ListPlayersByTeam(ctx, "DAL")
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestGetPlayer(t *testing.T) {
	store := setupTestStore(t)

	player, err := store.GetPlayer(context.Background(), "mahomes")
	require.NoError(t, err)
	assert.Equal(t, "Patrick Mahomes", player.FullName)

	_, err = store.GetPlayer(context.Background(), "nobody")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestGetCurrentScheduleEmptyCollection(t *testing.T) {
	store := setupTestStore(t)

	schedule, err := store.GetCurrentSchedule(context.Background())
	require.NoError(t, err)
	assert.Zero(t, schedule.Season)
	assert.Zero(t, schedule.Week)
	assert.NotNil(t, schedule.Events)
	assert.Empty(t, schedule.Events)
}

func TestGetCurrentSchedule(t *testing.T) {
	docs, err := docstore.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, docs.Close()) })

	ctx := context.Background()
	require.NoError(t, docs.Put(ctx, ScheduleCollection, docstore.Document{
		ID: "current",
		Data: map[string]any{
			"season": float64(2023),
			"week":   float64(11),
			"events": []any{
				map[string]any{
					"id":   "401547500",
					"name": "Chiefs at Raiders",
					"date": map[string]any{"seconds": float64(1700000000), "nanoseconds": float64(0)},
				},
			},
		},
	}))

	schedule, err := New(docs).GetCurrentSchedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2023, schedule.Season)
	require.Len(t, schedule.Events, 1)
	assert.Equal(t, "Chiefs at Raiders", schedule.Events[0].Name)
}

func TestStoreFailurePropagates(t *testing.T) {
	docs := docstore.NewMock()
	storeErr := errors.New("backend unavailable")
	docs.GetAllFunc = func(ctx context.Context, collection string) ([]docstore.Document, error) {
		return nil, storeErr
	}
	docs.QueryFunc = func(ctx context.Context, collection, field, value string) ([]docstore.Document, error) {
		return nil, storeErr
	}

	store := New(docs)
	ctx := context.Background()

	_, err := store.ListTeams(ctx)
	assert.ErrorIs(t, err, storeErr)

	_, err = store.ListPlayersByTeam(ctx, "KC")
	assert.ErrorIs(t, err, storeErr)

	_, err = store.GetCurrentSchedule(ctx)
	assert.ErrorIs(t, err, storeErr)
}

func TestQueryResolverIssuesOneStoreCall(t *testing.T) {
	docs := docstore.NewMock()
	store := New(docs)
	ctx := context.Background()

	_, err := store.ListPlayersByTeam(ctx, "KC")
	require.NoError(t, err)
	require.Len(t, docs.QueryCalls, 1)
	assert.Equal(t, PlayersCollection, docs.QueryCalls[0].Collection)
	assert.Equal(t, "team", docs.QueryCalls[0].Field)
	assert.Equal(t, "KC", docs.QueryCalls[0].Value)
	assert.Empty(t, docs.GetAllCalls)
}
