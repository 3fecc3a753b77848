package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnavailable(t *testing.T) {
	s := NewUnavailable(errors.New("DATABASE_URL and DATABASE_NAME are required"))
	ctx := context.Background()

	_, err := s.FindOne(ctx, "cart", nil)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "DATABASE_URL")

	_, err = s.InsertOne(ctx, "cart", Document{})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	assert.ErrorIs(t, s.UpdateFields(ctx, "cart", "id", nil), ErrStoreUnavailable)
	assert.NoError(t, s.Close(ctx))
}

func TestAvailable(t *testing.T) {
	assert.False(t, Available(nil))
	assert.False(t, Available(NewUnavailable(nil)))
	assert.True(t, Available(NewMemoryStore()))
}
