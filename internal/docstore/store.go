package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// store is a BadgerDB-backed Store. Documents are stored as JSON values under
// "<collection>/<id>" keys, so a collection is a key prefix.
type store struct {
	db *badger.DB
}

// Open opens the document store at dir. An empty dir opens an in-memory
// store, used by tests and by local runs that don't need persistence.
func Open(dir string) (Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		log.Info("Opening in-memory document store")
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	} else {
		log.Info("Opening document store", "dir", dir)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}
	return &store{db: db}, nil
}

func docKey(collection, id string) []byte {
	return []byte(collection + "/" + id)
}

func collectionPrefix(collection string) []byte {
	return []byte(collection + "/")
}

// GetAll returns every document in the collection.
func (s *store) GetAll(ctx context.Context, collection string) ([]Document, error) {
	docs := []Document{}
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := collectionPrefix(collection)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			id := string(item.Key()[len(prefix):])
			err := item.Value(func(val []byte) error {
				doc, err := decodeDocument(id, val)
				if err != nil {
					return err
				}
				docs = append(docs, doc)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", collection, err)
	}
	return docs, nil
}

// Get returns the document stored under id, or ErrNotFound.
func (s *store) Get(ctx context.Context, collection, id string) (Document, error) {
	var doc Document
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(docKey(collection, id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			doc, err = decodeDocument(id, val)
			return err
		})
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

// Query scans the collection and keeps documents whose top-level field equals
// value. Badger has no native secondary indexes, so this is a client-side
// filter over the collection prefix; result ordering is store-defined and
// callers must not rely on it.
func (s *store) Query(ctx context.Context, collection, field, value string) ([]Document, error) {
	all, err := s.GetAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	matches := []Document{}
	for _, doc := range all {
		if fieldValue, ok := doc.Data[field].(string); ok && fieldValue == value {
			matches = append(matches, doc)
		}
	}
	return matches, nil
}

// Put stores a single document, replacing any existing one with the same id.
func (s *store) Put(ctx context.Context, collection string, doc Document) error {
	if doc.ID == "" {
		return fmt.Errorf("put %s: document has no id", collection)
	}
	data, err := json.Marshal(doc.Data)
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", collection, doc.ID, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(docKey(collection, doc.ID), data)
	})
}

// PutAll stores all documents in a single transaction.
func (s *store) PutAll(ctx context.Context, collection string, docs []Document) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for _, doc := range docs {
			if doc.ID == "" {
				return fmt.Errorf("put %s: document has no id", collection)
			}
			data, err := json.Marshal(doc.Data)
			if err != nil {
				return fmt.Errorf("marshal %s/%s: %w", collection, doc.ID, err)
			}
			if err := txn.Set(docKey(collection, doc.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// Count returns the number of documents in the collection without decoding
// values.
func (s *store) Count(ctx context.Context, collection string) (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := collectionPrefix(collection)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return count, nil
}

func (s *store) Close() error {
	return s.db.Close()
}

func decodeDocument(id string, val []byte) (Document, error) {
	data := map[string]any{}
	if err := json.Unmarshal(val, &data); err != nil {
		return Document{}, fmt.Errorf("decode document %s: %w", id, err)
	}
	return Document{ID: id, Data: data}, nil
}
