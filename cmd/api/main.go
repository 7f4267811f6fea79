package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/xyspace-git/GeekYard-RAPP/internal/application/service"
	"github.com/xyspace-git/GeekYard-RAPP/internal/config"
	"github.com/xyspace-git/GeekYard-RAPP/internal/infrastructure/repository"
	"github.com/xyspace-git/GeekYard-RAPP/internal/presentation/http/handler"
	"github.com/xyspace-git/GeekYard-RAPP/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize repositories
	receiptRepo := repository.NewReceiptRepository(cfg.Storage.ReceiptPath())
	sequenceRepo := repository.NewSequenceRepository(cfg.Storage.CounterPath())

	// Initialize services
	receiptService := service.NewReceiptService(receiptRepo, sequenceRepo, cfg.Issuer)

	// Initialize handlers
	handlers := &routes.Handlers{
		Page:    handler.NewPageHandler(receiptService),
		Receipt: handler.NewReceiptHandler(receiptService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:          cfg,
		TemplateGlob: "web/templates/*.html",
		StaticDir:    "web/static",
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
