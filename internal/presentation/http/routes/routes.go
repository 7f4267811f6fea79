package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xyspace-git/GeekYard-RAPP/internal/config"
	"github.com/xyspace-git/GeekYard-RAPP/internal/presentation/http/handler"
	"github.com/xyspace-git/GeekYard-RAPP/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Page    *handler.PageHandler
	Receipt *handler.ReceiptHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg          *config.Config
	TemplateGlob string
	StaticDir    string
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// HTML views and static assets
	if deps.TemplateGlob != "" {
		router.LoadHTMLGlob(deps.TemplateGlob)
	}
	if deps.StaticDir != "" {
		router.Static("/static", deps.StaticDir)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	registerPageRoutes(router, h)

	// API v1 routes
	v1 := router.Group("/api/v1")
	registerReceiptRoutes(v1, h)

	return router
}

func registerPageRoutes(router *gin.Engine, h *Handlers) {
	router.GET("/", h.Page.Home)
	router.GET("/new", h.Page.New)
	router.GET("/receipts", h.Page.List)
	router.POST("/receipts", h.Page.Create)
	router.GET("/receipts/:number", h.Page.View)
	router.GET("/receipts/:number/edit", h.Page.Edit)
	router.POST("/receipts/:number", h.Page.Update)
	router.POST("/receipts/:number/delete", h.Page.Delete)
}

func registerReceiptRoutes(v1 *gin.RouterGroup, h *Handlers) {
	receipts := v1.Group("/receipts")
	{
		receipts.GET("", h.Receipt.List)
		receipts.POST("", h.Receipt.Create)
		receipts.GET("/:number", h.Receipt.Get)
		receipts.PUT("/:number", h.Receipt.Update)
		receipts.DELETE("/:number", h.Receipt.Delete)
	}
}
