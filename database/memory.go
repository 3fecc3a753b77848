package database

import (
	"context"
	"reflect"
	"sort"
	"sync"
)

// MemoryStore keeps documents in process memory. Stored and returned
// documents are deep copies, so callers never share state with the store.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

func (s *MemoryStore) Name() string { return "memory" }

func (s *MemoryStore) Ping(ctx context.Context) error { return ctx.Err() }

func (s *MemoryStore) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	want, err := Encode(filter)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doc := range s.collections[collection] {
		if matches(doc, want) {
			return clone(doc)
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Find(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	want, err := Encode(filter)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Document{}
	for _, doc := range s.collections[collection] {
		if !matches(doc, want) {
			continue
		}
		cp, err := clone(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	return out, nil
}

func (s *MemoryStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	docs, err := s.Find(ctx, collection, filter)
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

func (s *MemoryStore) InsertOne(ctx context.Context, collection string, doc Document) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id, body := splitID(doc)
	stored, err := clone(withID(id, body))
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], stored)
	s.mu.Unlock()

	return clone(stored)
}

func (s *MemoryStore) InsertMany(ctx context.Context, collection string, docs []Document) error {
	for _, doc := range docs {
		if _, err := s.InsertOne(ctx, collection, doc); err != nil {
			return err
		}
	}
	return nil
}

func (s *MemoryStore) UpdateFields(ctx context.Context, collection, id string, fields Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	changes, err := clone(fields)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.collections[collection] {
		if doc.ID() != id {
			continue
		}
		for k, v := range changes {
			if k == IDField {
				continue
			}
			doc[k] = v
		}
		return nil
	}
	return ErrNotFound
}

func (s *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Close(context.Context) error { return nil }

func clone(doc Document) (Document, error) {
	return Encode(doc)
}

func matches(doc Document, filter Document) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
