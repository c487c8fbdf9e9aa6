package docstore

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	GetAllFunc func(ctx context.Context, collection string) ([]Document, error)
	GetFunc    func(ctx context.Context, collection, id string) (Document, error)
	QueryFunc  func(ctx context.Context, collection, field, value string) ([]Document, error)
	PutFunc    func(ctx context.Context, collection string, doc Document) error
	PutAllFunc func(ctx context.Context, collection string, docs []Document) error
	CountFunc  func(ctx context.Context, collection string) (int, error)
	CloseFunc  func() error

	// Call records
	GetAllCalls []string
	GetCalls    []struct{ Collection, ID string }
	QueryCalls  []struct{ Collection, Field, Value string }
	PutCalls    []struct {
		Collection string
		Doc        Document
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) GetAll(ctx context.Context, collection string) ([]Document, error) {
	m.mu.Lock()
	m.GetAllCalls = append(m.GetAllCalls, collection)
	m.mu.Unlock()
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx, collection)
	}
	return []Document{}, nil
}

func (m *MockStore) Get(ctx context.Context, collection, id string) (Document, error) {
	m.mu.Lock()
	m.GetCalls = append(m.GetCalls, struct{ Collection, ID string }{collection, id})
	m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(ctx, collection, id)
	}
	return Document{}, ErrNotFound
}

func (m *MockStore) Query(ctx context.Context, collection, field, value string) ([]Document, error) {
	m.mu.Lock()
	m.QueryCalls = append(m.QueryCalls, struct{ Collection, Field, Value string }{collection, field, value})
	m.mu.Unlock()
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, collection, field, value)
	}
	return []Document{}, nil
}

func (m *MockStore) Put(ctx context.Context, collection string, doc Document) error {
	m.mu.Lock()
	m.PutCalls = append(m.PutCalls, struct {
		Collection string
		Doc        Document
	}{collection, doc})
	m.mu.Unlock()
	if m.PutFunc != nil {
		return m.PutFunc(ctx, collection, doc)
	}
	return nil
}

func (m *MockStore) PutAll(ctx context.Context, collection string, docs []Document) error {
	if m.PutAllFunc != nil {
		return m.PutAllFunc(ctx, collection, docs)
	}
	return nil
}

func (m *MockStore) Count(ctx context.Context, collection string) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, collection)
	}
	return 0, nil
}

func (m *MockStore) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}
