package database

import (
	"context"
	"errors"
)

// IDField is the key under which every backend exposes a document's identity.
const IDField = "_id"

var (
	ErrStoreUnavailable  = errors.New("database not configured")
	ErrNotFound          = errors.New("document not found")
	ErrMalformedDocument = errors.New("malformed document")
)

// Document is a loosely typed stored record. Values are limited to what a
// JSON document can hold: strings, bools, numbers, nil, []any and nested maps.
type Document map[string]any

// ID returns the document identity, or "" when the document has none.
func (d Document) ID() string {
	id, _ := d[IDField].(string)
	return id
}

// Filter selects documents whose top-level fields equal the given values.
type Filter map[string]any

// Store is the document store contract shared by every backend.
type Store interface {
	Name() string
	Ping(ctx context.Context) error
	FindOne(ctx context.Context, collection string, filter Filter) (Document, error)
	Find(ctx context.Context, collection string, filter Filter) ([]Document, error)
	Count(ctx context.Context, collection string, filter Filter) (int64, error)
	InsertOne(ctx context.Context, collection string, doc Document) (Document, error)
	InsertMany(ctx context.Context, collection string, docs []Document) error
	// UpdateFields sets the given top-level fields on the document with the
	// given id. It returns ErrNotFound when no such document exists.
	UpdateFields(ctx context.Context, collection, id string, fields Document) error
	Collections(ctx context.Context) ([]string, error)
	Close(ctx context.Context) error
}

// Available reports whether s is a usable store.
func Available(s Store) bool {
	if s == nil {
		return false
	}
	_, unavailable := s.(*Unavailable)
	return !unavailable
}
