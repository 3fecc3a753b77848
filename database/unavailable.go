package database

import (
	"context"
	"fmt"
)

// Unavailable is the store used when no backend could be configured. Every
// call fails with ErrStoreUnavailable.
type Unavailable struct {
	Reason error
}

// NewUnavailable returns an Unavailable store remembering why setup failed.
func NewUnavailable(reason error) *Unavailable {
	return &Unavailable{Reason: reason}
}

func (u *Unavailable) err() error {
	if u == nil || u.Reason == nil {
		return ErrStoreUnavailable
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, u.Reason)
}

func (u *Unavailable) Name() string { return "unavailable" }

func (u *Unavailable) Ping(context.Context) error { return u.err() }

func (u *Unavailable) FindOne(context.Context, string, Filter) (Document, error) {
	return nil, u.err()
}

func (u *Unavailable) Find(context.Context, string, Filter) ([]Document, error) {
	return nil, u.err()
}

func (u *Unavailable) Count(context.Context, string, Filter) (int64, error) {
	return 0, u.err()
}

func (u *Unavailable) InsertOne(context.Context, string, Document) (Document, error) {
	return nil, u.err()
}

func (u *Unavailable) InsertMany(context.Context, string, []Document) error { return u.err() }

func (u *Unavailable) UpdateFields(context.Context, string, string, Document) error {
	return u.err()
}

func (u *Unavailable) Collections(context.Context) ([]string, error) { return nil, u.err() }

func (u *Unavailable) Close(context.Context) error { return nil }
