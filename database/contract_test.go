package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract exercises the behaviour every backend must share. Backends
// without a natural insertion order pass ordered=false.
func runStoreContract(t *testing.T, ordered bool, newStore func(t *testing.T) Store) {
	t.Helper()

	t.Run("should return ErrNotFound for missing document", func(t *testing.T) {
		s := newStore(t)
		_, err := s.FindOne(context.Background(), "cart", Filter{"session_id": "nobody"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("should insert and find by field", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		stored, err := s.InsertOne(ctx, "cart", Document{
			"session_id": "abc",
			"items":      []any{map[string]any{"slug": "wrath", "quantity": int64(2)}},
			"currency":   "USD",
		})
		require.NoError(t, err)
		require.NotEmpty(t, stored.ID())

		got, err := s.FindOne(ctx, "cart", Filter{"session_id": "abc"})
		require.NoError(t, err)
		assert.Equal(t, stored.ID(), got.ID())
		assert.Equal(t, "USD", got["currency"])

		var decoded struct {
			Items []struct {
				Slug     string `json:"slug"`
				Quantity int    `json:"quantity"`
			} `json:"items"`
		}
		require.NoError(t, Decode(got, &decoded))
		require.Len(t, decoded.Items, 1)
		assert.Equal(t, "wrath", decoded.Items[0].Slug)
		assert.Equal(t, 2, decoded.Items[0].Quantity)
	})

	t.Run("should keep caller supplied id", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, err := s.InsertOne(ctx, "subscriber", Document{IDField: "fixed-id", "email": "a@b.c"})
		require.NoError(t, err)

		got, err := s.FindOne(ctx, "subscriber", Filter{IDField: "fixed-id"})
		require.NoError(t, err)
		assert.Equal(t, "a@b.c", got["email"])
	})

	t.Run("should update only the given fields", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		stored, err := s.InsertOne(ctx, "cart", Document{"session_id": "u1", "items": []any{}, "currency": "USD"})
		require.NoError(t, err)

		err = s.UpdateFields(ctx, "cart", stored.ID(), Document{
			"items": []any{map[string]any{"slug": "envy", "quantity": int64(1)}},
		})
		require.NoError(t, err)

		got, err := s.FindOne(ctx, "cart", Filter{"session_id": "u1"})
		require.NoError(t, err)
		assert.Equal(t, "USD", got["currency"])
		items, ok := got["items"].([]any)
		require.True(t, ok)
		assert.Len(t, items, 1)
	})

	t.Run("should store null on update instead of dropping the field", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		stored, err := s.InsertOne(ctx, "subscriber", Document{"email": "a@b.c", "tagged_source": "footer"})
		require.NoError(t, err)

		require.NoError(t, s.UpdateFields(ctx, "subscriber", stored.ID(), Document{"tagged_source": nil}))

		got, err := s.FindOne(ctx, "subscriber", Filter{IDField: stored.ID()})
		require.NoError(t, err)
		v, present := got["tagged_source"]
		assert.True(t, present)
		assert.Nil(t, v)
		assert.Equal(t, "a@b.c", got["email"])
	})

	t.Run("should report missing document on update", func(t *testing.T) {
		s := newStore(t)
		err := s.UpdateFields(context.Background(), "cart", "missing", Document{"items": []any{}})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("should find and count in insertion order", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.InsertMany(ctx, "fragrance", []Document{
			{"slug": "wrath", "in_stock": true},
			{"slug": "envy", "in_stock": true},
			{"slug": "sloth", "in_stock": false},
		}))

		all, err := s.Find(ctx, "fragrance", nil)
		require.NoError(t, err)
		require.Len(t, all, 3)
		slugs := []any{all[0]["slug"], all[1]["slug"], all[2]["slug"]}
		if ordered {
			assert.Equal(t, []any{"wrath", "envy", "sloth"}, slugs)
		} else {
			assert.ElementsMatch(t, []any{"wrath", "envy", "sloth"}, slugs)
		}

		n, err := s.Count(ctx, "fragrance", Filter{"in_stock": true})
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		none, err := s.Find(ctx, "testimonial", nil)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("should list collections that hold documents", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, err := s.InsertOne(ctx, "cart", Document{"session_id": "x"})
		require.NoError(t, err)
		_, err = s.InsertOne(ctx, "subscriber", Document{"email": "x@y.z"})
		require.NoError(t, err)

		names, err := s.Collections(ctx)
		require.NoError(t, err)
		assert.Subset(t, names, []string{"cart", "subscriber"})
	})
}
