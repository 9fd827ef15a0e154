package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	v1 "github.com/sitebeam/api/v1"
	"github.com/sitebeam/config"
	"github.com/sitebeam/database"
	"github.com/sitebeam/lib/mail"
	"github.com/sitebeam/lib/storage"
	"github.com/sitebeam/middleware"
	"github.com/sitebeam/services"
)

func main() {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Load configuration
	config.LoadEnv()
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatalf("❌ ERROR: JWT_SECRET not set in environment")
	}

	// Initialize database
	database.Initialize(cfg.DatabaseURL)

	// Object storage (presigned upload/download URLs)
	store, err := storage.NewClient(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to create storage client: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := store.EnsureBucket(ctx); err != nil {
		log.Printf("⚠️ Could not verify storage bucket: %v", err)
	}
	cancel()

	// Wire shared adapters into the service layer
	services.Configure(cfg, store, mail.NewMailer(cfg))

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Portal-Token"},
		AllowCredentials: true,
	}))

	// Request metrics
	router.Use(middleware.MetricsMiddleware())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "sitebeam",
			"version": "1.0.0",
		})
	})

	// Mount versioned API
	v1.RegisterRoutes(router.Group("/api/v1"))

	// Start server
	log.Printf("🚀 Sitebeam API starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
