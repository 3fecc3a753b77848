package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfume-shop/database"
	"perfume-shop/models"
	"perfume-shop/repositories"
)

func TestSeedService_SeedFragrances(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	repo := repositories.NewFragranceRepository(store)
	cache := &mockFragranceCache{}
	cache.On("Invalidate", ctx).Return(nil).Once()
	catalog := NewCatalogService(repo, cache, nil)

	seeder := NewSeedService(store, repo, catalog, nil)
	assert.True(t, seeder.SeedFragrances(ctx))
	assert.False(t, seeder.SeedFragrances(ctx))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8), n)

	oblivion, err := repo.FindBySlug(ctx, "oblivion")
	require.NoError(t, err)
	require.NotNil(t, oblivion.Variant)
	assert.Equal(t, "Collector's Edition", *oblivion.Variant)
	assert.Equal(t, []string{"Musk", "Slate", "Cedar"}, oblivion.BaseNotes)
	cache.AssertExpectations(t)
}

func TestSeedService_SkipsNonEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	repo := repositories.NewFragranceRepository(store)
	require.NoError(t, repo.InsertMany(ctx, demoFragrances()[:1]))

	assert.False(t, NewSeedService(store, repo, nil, nil).SeedFragrances(ctx))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSeedService_SwallowsErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("should skip an unavailable store", func(t *testing.T) {
		store := database.NewUnavailable(nil)
		seeder := NewSeedService(store, repositories.NewFragranceRepository(store), nil, nil)
		assert.False(t, seeder.SeedFragrances(ctx))
	})

	t.Run("should swallow insert failures", func(t *testing.T) {
		seeder := NewSeedService(database.NewMemoryStore(), failingSeeder{}, nil, nil)
		assert.False(t, seeder.SeedFragrances(ctx))
	})
}

type failingSeeder struct{}

func (failingSeeder) Count(context.Context) (int64, error) { return 0, nil }

func (failingSeeder) InsertMany(context.Context, []models.Fragrance) error {
	return assert.AnError
}

func TestDemoFragrances_AreValid(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range demoFragrances() {
		assert.NoError(t, f.Validate(), f.Slug)
		assert.False(t, seen[f.Slug], "duplicate slug %s", f.Slug)
		seen[f.Slug] = true
	}
	assert.Len(t, seen, 8)
}
