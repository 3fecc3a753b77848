package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"perfume-shop/database"
	"perfume-shop/models"
)

type FragranceReader interface {
	FindAll(ctx context.Context) ([]models.Fragrance, error)
	FindBySlug(ctx context.Context, slug string) (*models.Fragrance, error)
}

// FragranceCache holds the full catalog listing. Get reports ok=false on a
// miss.
type FragranceCache interface {
	Get(ctx context.Context) (list []models.Fragrance, ok bool, err error)
	Set(ctx context.Context, list []models.Fragrance) error
	Invalidate(ctx context.Context) error
}

const defaultCatalogLoadTimeout = 10 * time.Second

type CatalogService struct {
	fragrances  FragranceReader
	cache       FragranceCache
	group       singleflight.Group
	loadTimeout time.Duration
	logger      *slog.Logger
}

// NewCatalogService returns a catalog reader. cache may be nil.
func NewCatalogService(fragrances FragranceReader, cache FragranceCache, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		fragrances:  fragrances,
		cache:       cache,
		loadTimeout: defaultCatalogLoadTimeout,
		logger:      logger,
	}
}

// WithLoadTimeout bounds the shared store load behind a cache miss.
func (s *CatalogService) WithLoadTimeout(d time.Duration) *CatalogService {
	if d > 0 {
		s.loadTimeout = d
	}
	return s
}

func (s *CatalogService) ListFragrances(ctx context.Context) ([]models.Fragrance, error) {
	if s.cache != nil {
		list, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "catalog cache read failed", "error", err)
		} else if ok {
			return list, nil
		}
	}

	// The shared load outlives any single caller's request.
	ch := s.group.DoChan(fragranceCacheKey, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.loadTimeout)
		defer cancel()

		list, err := s.fragrances.FindAll(loadCtx)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			if err := s.cache.Set(loadCtx, list); err != nil {
				s.logger.WarnContext(ctx, "catalog cache write failed", "error", err)
			}
		}
		return list, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("list fragrances: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("list fragrances: %w", res.Err)
		}
		return res.Val.([]models.Fragrance), nil
	}
}

func (s *CatalogService) GetFragrance(ctx context.Context, slug string) (*models.Fragrance, error) {
	f, err := s.fragrances.FindBySlug(ctx, slug)
	if errors.Is(err, database.ErrNotFound) {
		return nil, &NotFoundError{Resource: "Fragrance", Key: "slug", Value: slug}
	}
	if err != nil {
		return nil, fmt.Errorf("get fragrance %s: %w", slug, err)
	}
	return f, nil
}

func (s *CatalogService) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "catalog cache invalidation failed", "error", err)
	}
}
