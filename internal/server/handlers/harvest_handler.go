package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pedrocontreras2007/floricoop/internal/domain/models"
	"github.com/pedrocontreras2007/floricoop/internal/service/store"
)

// HarvestHandler serves the /api/harvests resource.
type HarvestHandler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewHarvestHandler constructs the harvest HTTP adapter.
func NewHarvestHandler(dataStore *store.Store, logger *zap.Logger) *HarvestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HarvestHandler{store: dataStore, logger: logger}
}

// List returns the current harvest collection.
func (h *HarvestHandler) List(c *gin.Context) {
	respond(c, http.StatusOK, h.store.Harvests())
}

// Get returns a single harvest by id.
func (h *HarvestHandler) Get(c *gin.Context) {
	id := c.Param("id")
	for _, harvest := range h.store.Harvests() {
		if harvest.ID == id {
			respond(c, http.StatusOK, harvest)
			return
		}
	}
	respondError(c, http.StatusNotFound, "harvest not found")
}

// Create records a new harvest.
func (h *HarvestHandler) Create(c *gin.Context) {
	var input models.HarvestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid harvest payload", zap.Error(err))
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !input.Category.Valid() || !input.RecordedBy.Valid() {
		respondError(c, http.StatusBadRequest, "unknown category or role")
		return
	}

	harvest := h.store.AddHarvest(input)
	respond(c, http.StatusCreated, harvest)
}

// Update replaces a harvest by id.
func (h *HarvestHandler) Update(c *gin.Context) {
	var input models.HarvestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid harvest payload", zap.Error(err))
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !input.Category.Valid() || !input.RecordedBy.Valid() {
		respondError(c, http.StatusBadRequest, "unknown category or role")
		return
	}

	harvest, changed := h.store.UpdateHarvest(c.Param("id"), input)
	if !changed {
		respondError(c, http.StatusNotFound, "harvest not found")
		return
	}
	respond(c, http.StatusOK, harvest)
}

// UpdateQuantity adjusts the stock count of a harvest lot.
func (h *HarvestHandler) UpdateQuantity(c *gin.Context) {
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
	if !h.store.UpdateHarvestQuantity(id, models.NormalizeQuantity(req.Quantity), req.RecordedBy, req.PartnerName) {
		respondError(c, http.StatusNotFound, "harvest not found")
		return
	}
	respond(c, http.StatusOK, gin.H{"id": id})
}

// Delete removes a harvest by id.
func (h *HarvestHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.RemoveHarvest(id) {
		respondError(c, http.StatusNotFound, "harvest not found")
		return
	}
	respond(c, http.StatusOK, gin.H{"id": id})
}

// QuantityUpdateRequest carries a stock correction with its attribution.
type QuantityUpdateRequest struct {
	Quantity    float64         `json:"quantity"`
	RecordedBy  models.UserRole `json:"recordedBy" binding:"required"`
	PartnerName string          `json:"recordedByPartnerName"`
}
