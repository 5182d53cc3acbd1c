package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shop-service/internal/adapter/gin/middleware"
	"shop-service/internal/domain/user"
	"shop-service/internal/usecase/cart"
)

// CartHandler handles HTTP requests for the caller's cart. All routes
// sit behind the auth guard; the user id comes from the token claims.
type CartHandler struct {
	uc  *cart.Usecase
	log *zap.Logger
}

// NewCartHandler creates a new CartHandler instance
func NewCartHandler(uc *cart.Usecase, log *zap.Logger) *CartHandler {
	return &CartHandler{uc: uc, log: log}
}

// AddRequest represents the HTTP request body for adding to the cart.
// Qty is loosely typed to mirror the coercion contract: any invalid
// quantity falls back to 1.
type AddRequest struct {
	ItemID string `json:"itemId"`
	Qty    any    `json:"qty"`
}

// RemoveRequest represents the HTTP request body for removing from the cart
type RemoveRequest struct {
	ItemID string `json:"itemId"`
}

// CartResponse represents the HTTP response for all cart operations
type CartResponse struct {
	Cart []user.CartLine `json:"cart"`
}

// Get handles GET /api/cart
func (h *CartHandler) Get(c *gin.Context) {
	claims := middleware.Identity(c)

	lines, err := h.uc.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CartResponse{Cart: lines})
}

// Add handles POST /api/cart/add
func (h *CartHandler) Add(c *gin.Context) {
	claims := middleware.Identity(c)

	var req AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId required"})
		return
	}

	lines, err := h.uc.Add(c.Request.Context(), claims.UserID, req.ItemID, coerceQty(req.Qty))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CartResponse{Cart: lines})
}

// Remove handles POST /api/cart/remove
func (h *CartHandler) Remove(c *gin.Context) {
	claims := middleware.Identity(c)

	var req RemoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId required"})
		return
	}

	lines, err := h.uc.Remove(c.Request.Context(), claims.UserID, req.ItemID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CartResponse{Cart: lines})
}

// coerceQty coerces a loosely typed quantity to an int >= 1, defaulting
// to 1 on anything unusable.
func coerceQty(v any) int {
	qty := 1
	switch n := v.(type) {
	case float64: // JSON numbers decode as float64
		qty = int(n)
	case string:
		if parsed, err := strconv.Atoi(n); err == nil {
			qty = parsed
		}
	}
	if qty < 1 {
		qty = 1
	}
	return qty
}
