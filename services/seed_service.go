package services

import (
	"context"
	"log/slog"

	"perfume-shop/database"
	"perfume-shop/models"
)

type FragranceSeeder interface {
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, fragrances []models.Fragrance) error
}

// SeedService fills an empty catalog with the demo collection.
type SeedService struct {
	store      database.Store
	fragrances FragranceSeeder
	catalog    *CatalogService
	logger     *slog.Logger
}

func NewSeedService(store database.Store, fragrances FragranceSeeder, catalog *CatalogService, logger *slog.Logger) *SeedService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SeedService{
		store:      store,
		fragrances: fragrances,
		catalog:    catalog,
		logger:     logger,
	}
}

// SeedFragrances reports whether the demo catalog was inserted. Failures are
// logged and never returned; startup must not depend on seeding.
func (s *SeedService) SeedFragrances(ctx context.Context) bool {
	if !database.Available(s.store) {
		s.logger.InfoContext(ctx, "skipping catalog seed, store not available")
		return false
	}

	n, err := s.fragrances.Count(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "catalog seed count failed", "error", err)
		return false
	}
	if n > 0 {
		return false
	}

	items := demoFragrances()
	if err := s.fragrances.InsertMany(ctx, items); err != nil {
		s.logger.WarnContext(ctx, "catalog seed insert failed", "error", err)
		return false
	}

	if s.catalog != nil {
		s.catalog.InvalidateCache(ctx)
	}
	s.logger.InfoContext(ctx, "catalog seeded", "count", len(items))
	return true
}
