package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nfl_api_requests_total",
			Help: "The total number of HTTP requests served, by route and status.",
		}, []string{"route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nfl_api_request_duration_seconds",
			Help:    "The duration of HTTP requests, by route.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"route"}),
		StoreFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nfl_api_store_failures_total",
			Help: "The total number of document store calls that failed.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "nfl_api_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.RequestsTotal,
		s.RequestDuration,
		s.StoreFailures,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) ObserveRequest(route string, status int, duration float64) {
	s.RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	s.RequestDuration.WithLabelValues(route).Observe(duration)
}

func (s *Service) IncStoreFailures() {
	s.StoreFailures.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
