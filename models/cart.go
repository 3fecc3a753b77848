package models

import (
	"errors"
	"fmt"
	"strings"
)

const DefaultCurrency = "USD"

type CartItem struct {
	Slug     string `json:"slug"`
	Quantity int    `json:"quantity"`
}

type Cart struct {
	ID        string     `json:"-"`
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	Currency  string     `json:"currency"`
}

func NewCart(sessionID string) *Cart {
	return &Cart{
		SessionID: sessionID,
		Items:     []CartItem{},
		Currency:  DefaultCurrency,
	}
}

// Normalize fills the defaults a stored cart may omit.
func (c *Cart) Normalize() {
	if c.Items == nil {
		c.Items = []CartItem{}
	}
	if strings.TrimSpace(c.Currency) == "" {
		c.Currency = DefaultCurrency
	}
}

// Validate checks the shape of a cart read back from the store. Quantities
// are not range-checked: upserts accept any integer.
func (c *Cart) Validate() error {
	if strings.TrimSpace(c.SessionID) == "" {
		return errors.New("cart: session_id is required")
	}
	for i, it := range c.Items {
		if strings.TrimSpace(it.Slug) == "" {
			return fmt.Errorf("cart: item %d has no slug", i)
		}
	}
	return nil
}

type AddCartItemRequest struct {
	Quantity *int `json:"quantity"`
}

func (r AddCartItemRequest) QuantityOrDefault() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

type CheckoutResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
