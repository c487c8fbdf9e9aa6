package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/marioniya/nfl-api/internal/config"
	"github.com/marioniya/nfl-api/internal/league"
	"github.com/marioniya/nfl-api/internal/metrics"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewServer(store league.LeagueStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         chi.NewRouter(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	r := s.Router
	r.Use(chimiddleware.Recoverer)
	r.Use(paramsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.Cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	r.Handle("/metrics", s.MetricsHandler)
	r.Get("/health", s.HealthCheckHandler())

	r.Route("/api", func(r chi.Router) {
		r.Use(s.metricsMiddleware)
		r.Get("/teams", s.ListTeamsHandler())
		r.Get("/teams/{id}", s.GetTeamHandler())
		r.Get("/teams/division/{divisionID}", s.ListTeamsByDivisionHandler())
		r.Get("/players", s.ListPlayersHandler())
		r.Get("/players/{id}", s.GetPlayerHandler())
		r.Get("/players/team/{teamID}", s.ListPlayersByTeamHandler())
		r.Get("/conferences", s.ListConferencesHandler())
		r.Get("/position-types", s.ListPositionTypesHandler())
		r.Get("/schedule", s.ScheduleHandler())
	})

	// Swagger docs, same process as the API it documents.
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
