package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/marioniya/nfl-api/internal/docstore"
)

// The handlers below share three generic bodies: a collection scan, a point
// lookup and a filtered scan. Between them they implement the full status
// state machine: empty collections are a valid 200, lookup and filter misses
// are 404s with the entity-specific message, and store failures are a
// genericized 500 that never echoes the internal error.

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, ErrorResponse{Error: message})
}

// storeFailure logs the real error, counts it and serves the generic message.
func (s *Server) storeFailure(w http.ResponseWriter, message string, err error) {
	log.Error("Document store call failed", "error", err)
	s.Metrics.IncStoreFailures()
	s.respondError(w, http.StatusInternalServerError, message)
}

// listEndpoint serves a full-collection scan. An empty collection is a valid
// empty list, never a 404.
func listEndpoint[T any](s *Server, entities string, fetch func(ctx context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := fetch(r.Context())
		if err != nil {
			s.storeFailure(w, fmt.Sprintf("Failed to retrieve %s.", entities), err)
			return
		}
		if items == nil {
			items = []T{}
		}
		s.respondJSON(w, http.StatusOK, items)
	}
}

// lookupEndpoint serves a point lookup by the named path parameter. A missing
// or syntactically empty id falls out as a miss, not a 400.
func lookupEndpoint[T any](s *Server, entity, entities, param string, fetch func(ctx context.Context, id string) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, param)
		item, err := fetch(r.Context(), id)
		if errors.Is(err, docstore.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, fmt.Sprintf("%s not found.", entity))
			return
		}
		if err != nil {
			s.storeFailure(w, fmt.Sprintf("Failed to retrieve %s.", entities), err)
			return
		}
		s.respondJSON(w, http.StatusOK, item)
	}
}

// filterEndpoint serves a filtered collection scan. Zero matches for the
// filter value is a 404, unlike a bare collection scan.
func filterEndpoint[T any](s *Server, entities, filter, param string, fetch func(ctx context.Context, value string) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value := chi.URLParam(r, param)
		items, err := fetch(r.Context(), value)
		if err != nil {
			s.storeFailure(w, fmt.Sprintf("Failed to retrieve %s.", entities), err)
			return
		}
		if len(items) == 0 {
			s.respondError(w, http.StatusNotFound, fmt.Sprintf("No %s found for this %s.", entities, filter))
			return
		}
		s.respondJSON(w, http.StatusOK, items)
	}
}

// HealthCheckHandler reports process liveness.
func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// ListTeamsHandler retrieves all NFL teams.
// @Summary Retrieves all NFL teams
// @Description Returns a list of all NFL teams with their complete information
// @Tags Teams
// @Produce json
// @Success 200 {array} league.Team
// @Failure 500 {object} ErrorResponse
// @Router /teams [get]
func (s *Server) ListTeamsHandler() http.HandlerFunc {
	return listEndpoint(s, "teams", s.Store.ListTeams)
}

// GetTeamHandler retrieves a specific NFL team by ID.
// @Summary Retrieves a specific NFL team by ID
// @Description Returns detailed information about a specific NFL team
// @Tags Teams
// @Produce json
// @Param id path string true "Unique identifier of the team"
// @Success 200 {object} league.Team
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /teams/{id} [get]
func (s *Server) GetTeamHandler() http.HandlerFunc {
	return lookupEndpoint(s, "Team", "teams", "id", s.Store.GetTeam)
}

// ListTeamsByDivisionHandler retrieves all teams in a division.
// @Summary Retrieves all NFL teams in a division
// @Description Returns the teams whose division matches the given value
// @Tags Teams
// @Produce json
// @Param divisionID path string true "Division name"
// @Success 200 {array} league.Team
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /teams/division/{divisionID} [get]
func (s *Server) ListTeamsByDivisionHandler() http.HandlerFunc {
	return filterEndpoint(s, "teams", "division", "divisionID", s.Store.ListTeamsByDivision)
}

// ListPlayersHandler retrieves all NFL players.
// @Summary Retrieves all NFL players
// @Description Returns a list of all NFL players with their complete information
// @Tags Players
// @Produce json
// @Success 200 {array} league.Player
// @Failure 500 {object} ErrorResponse
// @Router /players [get]
func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return listEndpoint(s, "players", s.Store.ListPlayers)
}

// GetPlayerHandler retrieves a specific NFL player by ID.
// @Summary Retrieves a specific NFL player by ID
// @Description Returns detailed information about a specific NFL player
// @Tags Players
// @Produce json
// @Param id path string true "Unique identifier of the player"
// @Success 200 {object} league.Player
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /players/{id} [get]
func (s *Server) GetPlayerHandler() http.HandlerFunc {
	return lookupEndpoint(s, "Player", "players", "id", s.Store.GetPlayer)
}

// ListPlayersByTeamHandler retrieves all players on a team.
// @Summary Retrieves all NFL players on a team
// @Description Returns the players whose team matches the given team id
// @Tags Players
// @Produce json
// @Param teamID path string true "Team identifier"
// @Success 200 {array} league.Player
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /players/team/{teamID} [get]
func (s *Server) ListPlayersByTeamHandler() http.HandlerFunc {
	return filterEndpoint(s, "players", "team", "teamID", s.Store.ListPlayersByTeam)
}

// ListConferencesHandler retrieves all NFL conferences.
// @Summary Retrieves all NFL conferences
// @Description Returns a list of all NFL conferences with their divisions
// @Tags Conferences
// @Produce json
// @Success 200 {array} league.Conference
// @Failure 500 {object} ErrorResponse
// @Router /conferences [get]
func (s *Server) ListConferencesHandler() http.HandlerFunc {
	return listEndpoint(s, "conferences", s.Store.ListConferences)
}

// ListPositionTypesHandler retrieves all NFL position types.
// @Summary Retrieves all NFL position types
// @Description Returns a list of all NFL position types (offense, defense, special teams) with their specific positions
// @Tags Position Types
// @Produce json
// @Success 200 {array} league.PositionType
// @Failure 500 {object} ErrorResponse
// @Router /position-types [get]
func (s *Server) ListPositionTypesHandler() http.HandlerFunc {
	return listEndpoint(s, "position types", s.Store.ListPositionTypes)
}

// ScheduleHandler retrieves the current week's schedule.
// @Summary Retrieves the current week's schedule
// @Description Returns a list of all events for the current week
// @Tags Schedule
// @Produce json
// @Success 200 {object} league.Schedule
// @Failure 500 {object} ErrorResponse
// @Router /schedule [get]
func (s *Server) ScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schedule, err := s.Store.GetCurrentSchedule(r.Context())
		if err != nil {
			s.storeFailure(w, "Failed to retrieve this week's schedule.", err)
			return
		}
		s.respondJSON(w, http.StatusOK, schedule)
	}
}
