package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shop-service/internal/domain/item"
	"shop-service/internal/usecase/catalog"
)

// ItemHandler handles HTTP requests for the item catalog
type ItemHandler struct {
	uc  *catalog.Usecase
	log *zap.Logger
}

// NewItemHandler creates a new ItemHandler instance
func NewItemHandler(uc *catalog.Usecase, log *zap.Logger) *ItemHandler {
	return &ItemHandler{uc: uc, log: log}
}

// CreateItemRequest represents the HTTP request body for creating an item
type CreateItemRequest struct {
	Title       string   `json:"title"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
}

// UpdateItemRequest represents a partial item: absent fields stay unchanged
type UpdateItemRequest struct {
	Title       *string  `json:"title"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
}

// ListItemsResponse represents the HTTP response for listing items
type ListItemsResponse struct {
	Items []item.Item `json:"items"`
}

// List handles GET /api/items with optional ?q,category,minPrice,maxPrice
func (h *ItemHandler) List(c *gin.Context) {
	filter := catalog.Filter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		MinPrice: parsePrice(c.Query("minPrice")),
		MaxPrice: parsePrice(c.Query("maxPrice")),
	}

	items, err := h.uc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListItemsResponse{Items: items})
}

// Create handles POST /api/items
func (h *ItemHandler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, price, category are required"})
		return
	}

	created, err := h.uc.Create(c.Request.Context(), catalog.CreateRequest{
		Title:       req.Title,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/items/:id
func (h *ItemHandler) Update(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.uc.Update(c.Request.Context(), c.Param("id"), catalog.UpdateRequest{
		Title:       req.Title,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/items/:id
func (h *ItemHandler) Delete(c *gin.Context) {
	removed, err := h.uc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, removed)
}

// parsePrice turns a price bound query param into a bound; non-numeric
// values are silently ignored rather than erroring.
func parsePrice(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
