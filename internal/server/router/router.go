package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pedrocontreras2007/floricoop/internal/server/handlers"
)

// Handlers groups the HTTP adapters mounted by the router.
type Handlers struct {
	Harvests  *handlers.HarvestHandler
	Inventory *handlers.InventoryHandler
	Losses    *handlers.LossHandler
	Reminders *handlers.ReminderHandler
	Reports   *handlers.ReportHandler
	Auth      *handlers.AuthHandler
}

// New wires the Gin engine with the collection API routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")
	{
		api.POST("/login", h.Auth.Login)

		api.GET("/harvests", h.Harvests.List)
		api.POST("/harvests", h.Harvests.Create)
		api.GET("/harvests/:id", h.Harvests.Get)
		api.PUT("/harvests/:id", h.Harvests.Update)
		api.PUT("/harvests/:id/quantity", h.Harvests.UpdateQuantity)
		api.DELETE("/harvests/:id", h.Harvests.Delete)

		api.GET("/inventory", h.Inventory.List)
		api.POST("/inventory", h.Inventory.Create)
		api.GET("/inventory/:id", h.Inventory.Get)
		api.PUT("/inventory/:id", h.Inventory.Update)
		api.PUT("/inventory/:id/quantity", h.Inventory.UpdateQuantity)
		api.DELETE("/inventory/:id", h.Inventory.Delete)

		api.GET("/losses", h.Losses.List)
		api.POST("/losses", h.Losses.Create)
		api.GET("/losses/distribution", h.Losses.Distribution)
		api.GET("/losses/:id", h.Losses.Get)
		api.DELETE("/losses/:id", h.Losses.Delete)

		api.GET("/reminders", h.Reminders.List)
		api.POST("/reminders", h.Reminders.Create)
		api.PUT("/reminders/:id", h.Reminders.Update)
		api.DELETE("/reminders/:id", h.Reminders.Delete)

		api.GET("/reports/dashboard", h.Reports.Dashboard)
		api.GET("/reports/inventory", h.Reports.Inventory)
		api.GET("/reports/stock-alerts", h.Reports.StockAlerts)
		api.GET("/reports/calendar", h.Reports.Calendar)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
