package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no document exists under the given id.
var ErrNotFound = errors.New("document not found")

// Store defines the interface for the document database: named collections of
// JSON documents, addressed by collection + id and queryable by field
// equality. All reads are point-in-time; there are no transactions across
// calls.
type Store interface {
	// GetAll returns every document in a collection, in store-defined order.
	// An empty collection yields an empty slice, not an error.
	GetAll(ctx context.Context, collection string) ([]Document, error)
	// Get returns the document with the given id, or ErrNotFound.
	Get(ctx context.Context, collection, id string) (Document, error)
	// Query returns all documents whose top-level field equals value.
	// Zero matches yield an empty slice, not an error.
	Query(ctx context.Context, collection, field, value string) ([]Document, error)
	Put(ctx context.Context, collection string, doc Document) error
	PutAll(ctx context.Context, collection string, docs []Document) error
	Count(ctx context.Context, collection string) (int, error)
	Close() error
}
