package main

import (
	"log"
	"time"

	"demoforge/ai"
	"demoforge/cache"
	"demoforge/config"
	"demoforge/db"
	_ "demoforge/docs" // Swagger docs
	"demoforge/handlers"
	"demoforge/service"
	"demoforge/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	cfg := config.GetConfig()

	// Initialize database
	database, err := db.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize cache
	appCache := cache.New()

	// Initialize Gemini AI client
	aiService, err := ai.New(cfg.GeminiAPIKey, cfg.ModelName, appCache)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini: %v", err)
	}
	defer aiService.Close()

	// Storage: chunked blobs + bounded history over the badger KV
	chunks := storage.NewChunkedStore(database, cfg.ChunkSize)
	history := storage.NewHistoryStore(database, chunks, cfg.HistoryLimit)

	// Core services
	planner := service.NewPlanner(aiService)
	generator := service.NewGenerator(planner, history, cfg.AgentRepoURL, cfg.AgentRepoBranch)

	// Initialize handlers
	h := handlers.New(generator, history)

	// Setup Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS", "HEAD"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          24 * time.Hour,
	}))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Routes
	r.GET("/health", h.HealthHandler)
	r.POST("/api/generate", h.GenerateHandler)
	r.GET("/api/history", h.ListHistoryHandler)
	r.GET("/api/history/:timestamp", h.GetHistoryHandler)
	r.DELETE("/api/history/:timestamp", h.DeleteHistoryHandler)
	r.DELETE("/api/history", h.ClearHistoryHandler)

	// Serve static files (for the web form UI)
	r.Static("/static", "./frontend/build/static")
	r.StaticFile("/", "./frontend/build/index.html")
	r.NoRoute(func(c *gin.Context) {
		c.File("./frontend/build/index.html")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
