package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pedrocontreras2007/floricoop/internal/domain/models"
	"github.com/pedrocontreras2007/floricoop/internal/service/store"
)

// InventoryHandler serves the /api/inventory resource.
type InventoryHandler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewInventoryHandler constructs the inventory HTTP adapter.
func NewInventoryHandler(dataStore *store.Store, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{store: dataStore, logger: logger}
}

// List returns the current inventory collection.
func (h *InventoryHandler) List(c *gin.Context) {
	respond(c, http.StatusOK, h.store.Inventory())
}

// Get returns a single item by id.
func (h *InventoryHandler) Get(c *gin.Context) {
	id := c.Param("id")
	for _, item := range h.store.Inventory() {
		if item.ID == id {
			respond(c, http.StatusOK, item)
			return
		}
	}
	respondError(c, http.StatusNotFound, "inventory item not found")
}

// Create records a new inventory item.
func (h *InventoryHandler) Create(c *gin.Context) {
	var input models.InventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid inventory payload", zap.Error(err))
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !input.Category.Valid() || !input.RecordedBy.Valid() {
		respondError(c, http.StatusBadRequest, "unknown category or role")
		return
	}

	item := h.store.AddInventoryItem(input)
	respond(c, http.StatusCreated, item)
}

// Update replaces an item by id.
func (h *InventoryHandler) Update(c *gin.Context) {
	var input models.InventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid inventory payload", zap.Error(err))
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !input.Category.Valid() || !input.RecordedBy.Valid() {
		respondError(c, http.StatusBadRequest, "unknown category or role")
		return
	}

	item, changed := h.store.UpdateInventoryItem(c.Param("id"), input)
	if !changed {
		respondError(c, http.StatusNotFound, "inventory item not found")
		return
	}
	respond(c, http.StatusOK, item)
}

// UpdateQuantity adjusts the stock count of an item.
func (h *InventoryHandler) UpdateQuantity(c *gin.Context) {
	var req QuantityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid quantity payload", zap.Error(err))
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.RecordedBy.Valid() {
		respondError(c, http.StatusBadRequest, "unknown role")
		return
	}

	id := c.Param("id")
	if !h.store.UpdateInventoryQuantity(id, models.NormalizeQuantity(req.Quantity), req.RecordedBy, req.PartnerName) {
		respondError(c, http.StatusNotFound, "inventory item not found")
		return
	}
	respond(c, http.StatusOK, gin.H{"id": id})
}

// Delete removes an item by id.
func (h *InventoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.RemoveInventoryItem(id) {
		respondError(c, http.StatusNotFound, "inventory item not found")
		return
	}
	respond(c, http.StatusOK, gin.H{"id": id})
}
