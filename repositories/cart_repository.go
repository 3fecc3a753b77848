package repositories

import (
	"context"
	"fmt"

	"perfume-shop/database"
	"perfume-shop/models"
)

type CartRepository struct {
	store database.Store
}

func NewCartRepository(store database.Store) *CartRepository {
	return &CartRepository{store: store}
}

// FindBySession returns database.ErrNotFound when the session has no cart.
// When several carts share a session id the first stored one wins.
func (r *CartRepository) FindBySession(ctx context.Context, sessionID string) (*models.Cart, error) {
	doc, err := r.store.FindOne(ctx, CartCollection, database.Filter{"session_id": sessionID})
	if err != nil {
		return nil, err
	}
	return parseCart(doc)
}

// Create inserts cart and records the identity assigned by the store.
func (r *CartRepository) Create(ctx context.Context, cart *models.Cart) error {
	doc, err := database.Encode(cart)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", cart.SessionID, err)
	}

	stored, err := r.store.InsertOne(ctx, CartCollection, doc)
	if err != nil {
		return err
	}
	cart.ID = stored.ID()
	return nil
}

// UpdateItems replaces the stored item list of an existing cart.
func (r *CartRepository) UpdateItems(ctx context.Context, cart *models.Cart) error {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	value, err := database.EncodeValue(items)
	if err != nil {
		return fmt.Errorf("encode cart items %s: %w", cart.SessionID, err)
	}
	return r.store.UpdateFields(ctx, CartCollection, cart.ID, database.Document{"items": value})
}

func parseCart(doc database.Document) (*models.Cart, error) {
	var cart models.Cart
	if err := database.Decode(doc, &cart); err != nil {
		return nil, fmt.Errorf("cart %s: %w", doc.ID(), err)
	}
	cart.Normalize()
	if err := cart.Validate(); err != nil {
		return nil, malformed(CartCollection, doc.ID(), err)
	}
	cart.ID = doc.ID()
	return &cart, nil
}
