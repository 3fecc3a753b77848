package repositories

import (
	"context"
	"fmt"

	"perfume-shop/database"
	"perfume-shop/models"
)

type FragranceRepository struct {
	store database.Store
}

func NewFragranceRepository(store database.Store) *FragranceRepository {
	return &FragranceRepository{store: store}
}

func (r *FragranceRepository) FindAll(ctx context.Context) ([]models.Fragrance, error) {
	docs, err := r.store.Find(ctx, FragranceCollection, nil)
	if err != nil {
		return nil, err
	}

	fragrances := make([]models.Fragrance, 0, len(docs))
	for _, doc := range docs {
		f, err := parseFragrance(doc)
		if err != nil {
			return nil, err
		}
		fragrances = append(fragrances, *f)
	}
	return fragrances, nil
}

// FindBySlug returns database.ErrNotFound when no fragrance has the slug.
func (r *FragranceRepository) FindBySlug(ctx context.Context, slug string) (*models.Fragrance, error) {
	doc, err := r.store.FindOne(ctx, FragranceCollection, database.Filter{"slug": slug})
	if err != nil {
		return nil, err
	}
	return parseFragrance(doc)
}

func (r *FragranceRepository) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, FragranceCollection, nil)
}

func (r *FragranceRepository) InsertMany(ctx context.Context, fragrances []models.Fragrance) error {
	docs := make([]database.Document, 0, len(fragrances))
	for _, f := range fragrances {
		doc, err := database.Encode(f)
		if err != nil {
			return fmt.Errorf("encode fragrance %s: %w", f.Slug, err)
		}
		docs = append(docs, doc)
	}
	return r.store.InsertMany(ctx, FragranceCollection, docs)
}

func parseFragrance(doc database.Document) (*models.Fragrance, error) {
	f := models.NewFragrance()
	if err := database.Decode(doc, &f); err != nil {
		return nil, fmt.Errorf("fragrance %s: %w", doc.ID(), err)
	}
	f.Normalize()
	if err := f.Validate(); err != nil {
		return nil, malformed(FragranceCollection, doc.ID(), err)
	}
	return &f, nil
}
