package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pedrocontreras2007/floricoop/internal/domain/models"
	"github.com/pedrocontreras2007/floricoop/internal/service/reports"
	"github.com/pedrocontreras2007/floricoop/internal/service/store"
)

// LossHandler serves the /api/losses resource.
type LossHandler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewLossHandler constructs the loss HTTP adapter.
func NewLossHandler(dataStore *store.Store, logger *zap.Logger) *LossHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LossHandler{store: dataStore, logger: logger}
}

// List returns the current loss collection, newest first.
func (h *LossHandler) List(c *gin.Context) {
	respond(c, http.StatusOK, h.store.Losses())
}

// Get returns a single loss by id.
func (h *LossHandler) Get(c *gin.Context) {
	id := c.Param("id")
	for _, loss := range h.store.Losses() {
		if loss.ID == id {
			respond(c, http.StatusOK, loss)
			return
		}
	}
	respondError(c, http.StatusNotFound, "loss not found")
}

// Create records a merma. A source reference depletes the referenced stock in
// the same operation.
func (h *LossHandler) Create(c *gin.Context) {
	var input models.LossInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid loss payload", zap.Error(err))
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !input.RecordedBy.Valid() {
		respondError(c, http.StatusBadRequest, "unknown role")
		return
	}
	if input.SourceType != "" && !input.SourceType.Valid() {
		respondError(c, http.StatusBadRequest, "unknown source type")
		return
	}

	loss := h.store.AddLoss(input)
	respond(c, http.StatusCreated, loss)
}

// Delete removes a loss by id. Depleted stock is not restored.
func (h *LossHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.RemoveLoss(id) {
		respondError(c, http.StatusNotFound, "loss not found")
		return
	}
	respond(c, http.StatusOK, gin.H{"id": id})
}

// Distribution returns the losses view with the donut chart layout, optionally
// filtered by recording role (?recordedBy=socio).
func (h *LossHandler) Distribution(c *gin.Context) {
	filter := models.UserRole(c.Query("recordedBy"))
	if filter != "" && !filter.Valid() {
		respondError(c, http.StatusBadRequest, "unknown role")
		return
	}
	respond(c, http.StatusOK, reports.BuildLossReport(h.store.Losses(), filter))
}
