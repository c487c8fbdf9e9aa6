package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marioniya/nfl-api/internal/config"
	"github.com/marioniya/nfl-api/internal/league"
	"github.com/marioniya/nfl-api/internal/metrics"
)

type Server struct {
	Store          league.LeagueStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         chi.Router
}

// ErrorResponse is the body returned for every non-200 outcome.
type ErrorResponse struct {
	Error string `json:"error"`
}
