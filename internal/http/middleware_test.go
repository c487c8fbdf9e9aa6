package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/marioniya/nfl-api/internal/config"
	"github.com/marioniya/nfl-api/internal/league"
	"github.com/marioniya/nfl-api/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddlewareRecordsRoutePattern(t *testing.T) {
	mock := metrics.NewMock()
	server := NewServer(
		league.NewMock(),
		mock,
		metrics.NewMetricsHandler(prometheus.NewRegistry()),
		config.Config{Port: "3000"},
	)

	rr := doGet(t, server, "/api/teams/KC")
	require.Equal(t, http.StatusNotFound, rr.Code)

	requests := mock.Requests()
	require.Len(t, requests, 1)
	// The chi pattern is recorded, not the raw path, so the label set stays
	// bounded no matter how many ids are requested.
	assert.Equal(t, "/api/teams/{id}", requests[0].Route)
	assert.Equal(t, http.StatusNotFound, requests[0].Status)
	assert.GreaterOrEqual(t, requests[0].Duration, 0.0)
}

func TestMetricsMiddlewareCountsStoreFailures(t *testing.T) {
	mock := metrics.NewMock()
	store := league.NewMock()
	store.ListTeamsFunc = func(ctx context.Context) ([]league.Team, error) {
		return nil, assert.AnError
	}
	server := NewServer(
		store,
		mock,
		metrics.NewMetricsHandler(prometheus.NewRegistry()),
		config.Config{Port: "3000"},
	)

	rr := doGet(t, server, "/api/teams")
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, 1, mock.StoreFailures())
}
