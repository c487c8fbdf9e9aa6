package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/marioniya/nfl-api/internal/config"
	"github.com/marioniya/nfl-api/internal/docstore"
	"github.com/marioniya/nfl-api/internal/league"
	"github.com/marioniya/nfl-api/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer initializes a server over a seeded in-memory document store.
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	docs, err := docstore.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, docs.Close()) })

	ctx := context.Background()
	require.NoError(t, docs.PutAll(ctx, league.TeamsCollection, []docstore.Document{
		{ID: "KC", Data: map[string]any{"name": "Chiefs", "abbreviation": "KC", "division": "AFC West"}},
		{ID: "LV", Data: map[string]any{"name": "Raiders", "abbreviation": "LV", "division": "AFC West"}},
		{ID: "SF", Data: map[string]any{"name": "49ers", "abbreviation": "SF", "division": "NFC West"}},
	}))
	require.NoError(t, docs.PutAll(ctx, league.PlayersCollection, []docstore.Document{
		{ID: "mahomes", Data: map[string]any{"fullName": "Patrick Mahomes", "team": "KC", "position": map[string]any{"name": "Quarterback", "type": "Offense"}}},
		{ID: "kelce", Data: map[string]any{"fullName": "Travis Kelce", "team": "KC", "position": "Tight End", "positionType": "Offense"}},
		{ID: "purdy", Data: map[string]any{"fullName": "Brock Purdy", "team": "SF"}},
	}))
	require.NoError(t, docs.Put(ctx, league.ConferencesCollection, docstore.Document{
		ID: "afc", Data: map[string]any{"name": "American Football Conference", "abbreviation": "AFC"},
	}))
	require.NoError(t, docs.Put(ctx, league.ScheduleCollection, docstore.Document{
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

	return newTestServer(t, league.New(docs))
}

func newTestServer(t *testing.T, store league.LeagueStore) *Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	cfg := config.Config{Port: "3000", AllowedOrigins: []string{"http://localhost:3000"}}
	return NewServer(store, metricsSvc, metricsHandler, cfg)
}

func doGet(t *testing.T, server *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheckHandler(t *testing.T) {
	server := setupTestServer(t)

	rr := doGet(t, server, "/health")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK!", rr.Body.String())
}

func TestListTeams(t *testing.T) {
	server := setupTestServer(t)

	rr := doGet(t, server, "/api/teams")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var teams []league.Team
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &teams))
	assert.Len(t, teams, 3)
}

func TestListTeamsEmptyCollectionIsOK(t *testing.T) {
	docs, err := docstore.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, docs.Close()) })
	server := newTestServer(t, league.New(docs))

	rr := doGet(t, server, "/api/teams")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestGetTeam(t *testing.T) {
	server := setupTestServer(t)

	rr := doGet(t, server, "/api/teams/KC")
	require.Equal(t, http.StatusOK, rr.Code)

	var team league.Team
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &team))
	assert.Equal(t, "KC", team.ID)
	assert.Equal(t, "Chiefs", team.Name)
}

func TestGetTeamNotFound(t *testing.T) {
	server := setupTestServer(t)

	rr := doGet(t, server, "/api/teams/XX")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error": "Team not found."}`, rr.Body.String())
}

func TestGetPlayerNotFound(t *testing.T) {
	server := setupTestServer(t)

	rr := doGet(t, server, "/api/players/nobody")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error": "Player not found."}`, rr.Body.String())
}

func TestListPlayersByTeam(t *testing.T) {
	server := setupTestServer(t)

	rr := doGet(t, server, "/api/players/team/KC")
	require.Equal(t, http.StatusOK, rr.Code)

	var players []league.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	require.Len(t, players, 2)
	for _, player := range players {
		assert.Equal(t, "KC", player.Team)
	}
}

func TestListPlayersByTeamNoMatches(t *testing.T) {
	server := setupTestServer(t)

	rr := doGet(t, server, "/api/players/team/DAL")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error": "No players found for this team."}`, rr.Body.String())
}

func TestListTeamsByDivisionNoMatches(t *testing.T) {
	server := setupTestServer(t)

	rr := doGet(t, server, "/api/teams/division/AFC South")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error": "No teams found for this division."}`, rr.Body.String())
}

// Filtering through the route must be equivalent to filtering the full list
// client-side.
func TestListTeamsByDivisionMatchesClientSideFilter(t *testing.T) {
	server := setupTestServer(t)

	rr := doGet(t, server, "/api/teams/division/AFC West")
	require.Equal(t, http.StatusOK, rr.Code)
	var filtered []league.Team
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &filtered))

	rr = doGet(t, server, "/api/teams")
	require.Equal(t, http.StatusOK, rr.Code)
	var all []league.Team
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))

	manual := []league.Team{}
	for _, team := range all {
		if team.Division == "AFC West" {
			manual = append(manual, team)
		}
	}
	assert.ElementsMatch(t, manual, filtered)
}

func TestPlayerSchemaDriftNormalized(t *testing.T) {
	server := setupTestServer(t)

	rr := doGet(t, server, "/api/players/kelce")
	require.Equal(t, http.StatusOK, rr.Code)

	// The legacy flat document comes back in the canonical nested shape.
	var player league.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &player))
	assert.Equal(t, league.Position{Name: "Tight End", Type: "Offense"}, player.Position)
}

func TestSchedule(t *testing.T) {
	server := setupTestServer(t)

	rr := doGet(t, server, "/api/schedule")
	require.Equal(t, http.StatusOK, rr.Code)

	var schedule league.Schedule
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &schedule))
	assert.Equal(t, 2023, schedule.Season)
	assert.Equal(t, 11, schedule.Week)
	require.Len(t, schedule.Events, 1)

	// Raw body check: the date must be the millisecond-precision UTC string.
	assert.Contains(t, rr.Body.String(), `"2023-11-14T22:13:20.000Z"`)
}

func TestScheduleEmptyCollection(t *testing.T) {
	docs, err := docstore.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, docs.Close()) })
	server := newTestServer(t, league.New(docs))

	rr := doGet(t, server, "/api/schedule")
	require.Equal(t, http.StatusOK, rr.Code)

	var schedule league.Schedule
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &schedule))
	assert.Empty(t, schedule.Events)
	assert.Zero(t, schedule.Season)
}

func TestStoreFailureIsGenericized(t *testing.T) {
	store := league.NewMock()
	store.ListConferencesFunc = func(ctx context.Context) ([]league.Conference, error) {
		return nil, errors.New("backend exploded: secret details")
	}
	server := newTestServer(t, store)

	rr := doGet(t, server, "/api/conferences")
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error": "Failed to retrieve conferences."}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "secret details")
}

func TestScheduleStoreFailure(t *testing.T) {
	store := league.NewMock()
	store.GetCurrentScheduleFunc = func(ctx context.Context) (league.Schedule, error) {
		return league.Schedule{}, errors.New("backend unavailable")
	}
	server := newTestServer(t, store)

	rr := doGet(t, server, "/api/schedule")
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error": "Failed to retrieve this week's schedule."}`, rr.Body.String())
}

// Repeating a request against unchanged data must return byte-identical JSON.
func TestIdempotentReads(t *testing.T) {
	server := setupTestServer(t)

	for _, path := range []string{"/api/teams", "/api/players", "/api/schedule"} {
		first := doGet(t, server, path)
		second := doGet(t, server, path)
		require.Equal(t, http.StatusOK, first.Code, path)
		assert.Equal(t, first.Body.String(), second.Body.String(), path)
	}
}

func TestPositionTypes(t *testing.T) {
	docs, err := docstore.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, docs.Close()) })

	require.NoError(t, docs.Put(context.Background(), league.PositionTypesCollection, docstore.Document{
		ID: "offense", Data: map[string]any{"name": "Offense", "positions": []any{"Quarterback"}},
	}))
	server := newTestServer(t, league.New(docs))

	rr := doGet(t, server, "/api/position-types")
	require.Equal(t, http.StatusOK, rr.Code)

	var types []league.PositionType
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &types))
	require.Len(t, types, 1)
	assert.Equal(t, "Offense", types[0].Name)
}
