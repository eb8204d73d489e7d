package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Demo credentials. This is not a real authentication system; the login screen
// only gates the demo deployment.
const (
	demoEmail    = "innovacode1857@gmail.com"
	demoPassword = "innovacode"
)

// AuthHandler serves the demo login endpoint.
type AuthHandler struct {
	logger *zap.Logger
}

// NewAuthHandler constructs the auth HTTP adapter.
func NewAuthHandler(logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the submitted credentials against the demo account.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login payload", zap.Error(err))
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.ToLower(strings.TrimSpace(req.Email)) != demoEmail || req.Password != demoPassword {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	respond(c, http.StatusOK, gin.H{"email": demoEmail})
}
