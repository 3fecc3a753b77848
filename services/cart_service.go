package services

import (
	"context"
	"errors"
	"fmt"

	"perfume-shop/database"
	"perfume-shop/models"
)

const checkoutMessage = "Proceeding to secure checkout gateway."

// CartStore persists carts keyed by session id. FindBySession returns
// database.ErrNotFound for an unknown session.
type CartStore interface {
	FindBySession(ctx context.Context, sessionID string) (*models.Cart, error)
	Create(ctx context.Context, cart *models.Cart) error
	UpdateItems(ctx context.Context, cart *models.Cart) error
}

// CartService owns the cart lifecycle: lazy creation, item upsert by slug,
// item removal and the empty cart guard on checkout. Every operation re-reads
// the cart and writes back the whole item list.
type CartService struct {
	carts CartStore
	locks *sessionLocks
}

// NewCartService returns a cart service. With serialize set, mutations of the
// same session are applied one at a time within this process.
func NewCartService(carts CartStore, serialize bool) *CartService {
	s := &CartService{carts: carts}
	if serialize {
		s.locks = newSessionLocks()
	}
	return s
}

func (s *CartService) lock(sessionID string) func() {
	if s.locks == nil {
		return func() {}
	}
	return s.locks.lock(sessionID)
}

func (s *CartService) GetOrCreateCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	cart, err := s.carts.FindBySession(ctx, sessionID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("load cart %s: %w", sessionID, err)
	}

	cart = models.NewCart(sessionID)
	if err := s.carts.Create(ctx, cart); err != nil {
		return nil, fmt.Errorf("create cart %s: %w", sessionID, err)
	}
	return cart, nil
}

// UpsertItem sets the quantity of slug in the session's cart, appending the
// item when absent. Quantities are stored as given, including zero and
// negative values.
func (s *CartService) UpsertItem(ctx context.Context, sessionID, slug string, quantity int) error {
	unlock := s.lock(sessionID)
	defer unlock()

	cart, err := s.carts.FindBySession(ctx, sessionID)
	if errors.Is(err, database.ErrNotFound) {
		cart = models.NewCart(sessionID)
		cart.Items = append(cart.Items, models.CartItem{Slug: slug, Quantity: quantity})
		if err := s.carts.Create(ctx, cart); err != nil {
			return fmt.Errorf("create cart %s: %w", sessionID, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("load cart %s: %w", sessionID, err)
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].Slug == slug {
			cart.Items[i].Quantity = quantity
			found = true
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{Slug: slug, Quantity: quantity})
	}

	if err := s.carts.UpdateItems(ctx, cart); err != nil {
		return fmt.Errorf("update cart %s: %w", sessionID, err)
	}
	return nil
}

// RemoveItem drops every item with slug. A missing cart is not an error.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, slug string) error {
	unlock := s.lock(sessionID)
	defer unlock()

	cart, err := s.carts.FindBySession(ctx, sessionID)
	if errors.Is(err, database.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load cart %s: %w", sessionID, err)
	}

	kept := make([]models.CartItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		if it.Slug != slug {
			kept = append(kept, it)
		}
	}
	cart.Items = kept

	if err := s.carts.UpdateItems(ctx, cart); err != nil {
		return fmt.Errorf("update cart %s: %w", sessionID, err)
	}
	return nil
}

// Checkout only confirms that the cart has items. It does not price, reserve
// stock or check that the slugs exist in the catalog.
func (s *CartService) Checkout(ctx context.Context, sessionID string) (*models.CheckoutResponse, error) {
	cart, err := s.carts.FindBySession(ctx, sessionID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrCartEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("load cart %s: %w", sessionID, err)
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	return &models.CheckoutResponse{
		Status:  "ready",
		Message: checkoutMessage,
	}, nil
}
