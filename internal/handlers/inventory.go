package handlers

import (
	"errors"
	"io"
	"net/http"

	"smart_fridge/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidBodyPref  = "invalid body: "
	errInvalidExpiry    = "invalid expiry_date; use YYYY-MM-DD"
	defaultAddQuantity  = 1.0
	statusRemoved       = "removed"
	statusAlreadyAbsent = "not_found"
)

// AddItemRequest is the payload of a manual add. Every field is optional.
type AddItemRequest struct {
	Name     string   `json:"name" example:"Milk"`
	Quantity *float64 `json:"quantity" binding:"omitempty,gte=0" example:"1"`
	Unit     string   `json:"unit" example:"carton"`
	// One of Dairy, Produce, Meat, Beverage, Snack, Condiment, Other (case-insensitive)
	Category string `json:"category" example:"Dairy"`
	// YYYY-MM-DD; defaults to a week from today
	ExpiryDate string `json:"expiry_date" example:"2025-03-12"`
}

// bindOptionalJSON binds the body into dst; an empty body leaves dst untouched.
func (h *Handler) bindOptionalJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}

// @Summary      List inventory
// @Description  Items in display order, newest detections first, with days remaining and severity.
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, items"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/inventory [get]
// @Security     BearerAuth
func (h *Handler) listInventory(c *gin.Context) {
	items := h.services.Inventory.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"items": items,
	})
}

// @Summary      Add item
// @Description  Blank fields default to "New Item", 1 pcs, Other, expiring in 7 days.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body      AddItemRequest  false  "Item"
// @Success      201   {object}  models.InventoryItem
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/inventory [post]
// @Security     BearerAuth
func (h *Handler) addItem(c *gin.Context) {
	var req AddItemRequest
	if !h.bindOptionalJSON(c, &req) {
		return
	}

	item := models.InventoryItem{
		Name:     req.Name,
		Quantity: defaultAddQuantity,
		Unit:     req.Unit,
		Category: models.ParseCategory(req.Category),
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.ExpiryDate != "" {
		d, err := models.ParseDate(req.ExpiryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidExpiry})
			return
		}
		item.ExpiryDate = d
	}

	added := h.services.Inventory.Add(c.Request.Context(), item)
	c.JSON(http.StatusCreated, added)
}

// @Summary      Remove item
// @Description  Removing an unknown id is not an error.
// @Tags         inventory
// @Produce      json
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  map[string]string  "status"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/inventory/{id} [delete]
// @Security     BearerAuth
func (h *Handler) removeItem(c *gin.Context) {
	status := statusAlreadyAbsent
	if h.services.Inventory.Remove(c.Request.Context(), c.Param("id")) {
		status = statusRemoved
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "id": c.Param("id")})
}
