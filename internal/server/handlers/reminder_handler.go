package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pedrocontreras2007/floricoop/internal/domain/models"
	"github.com/pedrocontreras2007/floricoop/internal/service/store"
)

// ReminderHandler serves the /api/reminders resource.
type ReminderHandler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewReminderHandler constructs the reminder HTTP adapter.
func NewReminderHandler(dataStore *store.Store, logger *zap.Logger) *ReminderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReminderHandler{store: dataStore, logger: logger}
}

// List returns the current reminder collection, ordered by schedule.
func (h *ReminderHandler) List(c *gin.Context) {
	respond(c, http.StatusOK, h.store.Reminders())
}

// Create schedules a new reminder.
func (h *ReminderHandler) Create(c *gin.Context) {
	var input models.ReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid reminder payload", zap.Error(err))
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	reminder := h.store.AddReminder(input)
	respond(c, http.StatusCreated, reminder)
}

// Update replaces a reminder by id.
func (h *ReminderHandler) Update(c *gin.Context) {
	var input models.ReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid reminder payload", zap.Error(err))
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	reminder, changed := h.store.UpdateReminder(c.Param("id"), input)
	if !changed {
		respondError(c, http.StatusNotFound, "reminder not found")
		return
	}
	respond(c, http.StatusOK, reminder)
}

// Delete removes a reminder by id.
func (h *ReminderHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.RemoveReminder(id) {
		respondError(c, http.StatusNotFound, "reminder not found")
		return
	}
	respond(c, http.StatusOK, gin.H{"id": id})
}
