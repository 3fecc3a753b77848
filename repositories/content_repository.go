package repositories

import (
	"context"
	"fmt"

	"perfume-shop/database"
	"perfume-shop/models"
)

type TestimonialRepository struct {
	store database.Store
}

func NewTestimonialRepository(store database.Store) *TestimonialRepository {
	return &TestimonialRepository{store: store}
}

func (r *TestimonialRepository) FindAll(ctx context.Context) ([]models.Testimonial, error) {
	docs, err := r.store.Find(ctx, TestimonialCollection, nil)
	if err != nil {
		return nil, err
	}

	testimonials := make([]models.Testimonial, 0, len(docs))
	for _, doc := range docs {
		var t models.Testimonial
		if err := database.Decode(doc, &t); err != nil {
			return nil, fmt.Errorf("testimonial %s: %w", doc.ID(), err)
		}
		if err := t.Validate(); err != nil {
			return nil, malformed(TestimonialCollection, doc.ID(), err)
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, nil
}

type SubscriberRepository struct {
	store database.Store
}

func NewSubscriberRepository(store database.Store) *SubscriberRepository {
	return &SubscriberRepository{store: store}
}

func (r *SubscriberRepository) Create(ctx context.Context, sub models.Subscriber) error {
	doc, err := database.Encode(sub)
	if err != nil {
		return fmt.Errorf("encode subscriber: %w", err)
	}
	_, err = r.store.InsertOne(ctx, SubscriberCollection, doc)
	return err
}
