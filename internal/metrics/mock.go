package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu            sync.Mutex
	requests      []RequestObservation
	storeFailures int
	startupTime   float64
}

// RequestObservation records one ObserveRequest call.
type RequestObservation struct {
	Route    string
	Status   int
	Duration float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		requests: make([]RequestObservation, 0),
	}
}

func (m *Mock) ObserveRequest(route string, status int, duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, RequestObservation{Route: route, Status: status, Duration: duration})
}

func (m *Mock) IncStoreFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeFailures++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Requests returns the recorded ObserveRequest calls.
func (m *Mock) Requests() []RequestObservation {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RequestObservation, len(m.requests))
	copy(out, m.requests)
	return out
}

// StoreFailures returns the number of times IncStoreFailures was called.
func (m *Mock) StoreFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storeFailures
}

// StartupTime returns the last value passed to SetStartupTime.
func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}
