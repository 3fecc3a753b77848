package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"perfume-shop/models"
	"perfume-shop/services"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// @Summary Get cart
// @Description Get the cart for a session, creating an empty one on first use
// @Tags Cart
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} models.Cart
// @Failure 500 {object} models.ErrorResponse
// @Router /api/cart/{session_id} [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.carts.GetOrCreateCart(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// @Summary Add or update cart item
// @Description Set the quantity of a fragrance in the cart. The quantity replaces any previous one.
// @Tags Cart
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param slug path string true "Fragrance slug"
// @Param request body models.AddCartItemRequest false "Quantity, defaults to 1"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/cart/{session_id}/items/{slug} [post]
func (ctrl *CartController) UpsertItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "quantity must be an integer")
		return
	}

	err := ctrl.carts.UpsertItem(c.Request.Context(), c.Param("session_id"), c.Param("slug"), req.QuantityOrDefault())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// @Summary Remove cart item
// @Description Remove a fragrance from the cart. Succeeds even when the cart or item does not exist.
// @Tags Cart
// @Produce json
// @Param session_id path string true "Session ID"
// @Param slug path string true "Fragrance slug"
// @Success 200 {object} models.StatusResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/cart/{session_id}/items/{slug} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	if err := ctrl.carts.RemoveItem(c.Request.Context(), c.Param("session_id"), c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// @Summary Checkout
// @Description Confirm the cart is ready for the payment gateway
// @Tags Cart
// @Produce json
// @Param session_id query string true "Session ID"
// @Success 200 {object} models.CheckoutResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = c.Query("sessionId")
	}
	if sessionID == "" {
		badRequest(c, "session_id is required")
		return
	}

	resp, err := ctrl.carts.Checkout(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
