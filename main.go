package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/cgrworks/quotation-api/config"
	"github.com/cgrworks/quotation-api/handlers"
	"github.com/cgrworks/quotation-api/middleware"
	"github.com/cgrworks/quotation-api/routes"
	"github.com/cgrworks/quotation-api/store"
)

func main() {
	logger := config.GetLogger()

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	db, err := config.InitDB()
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	logger.Info("✅ Database connected successfully")

	if err := config.RunMigrations(db); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	st, err := store.New(store.NewPostgresPersister(db))
	if err != nil {
		logger.Fatalf("Failed to restore workspace state: %v", err)
	}

	wsHandler := handlers.NewWSHandler()

	router := gin.Default()

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	allowedOrigins := []string{
		frontendURL,
		"https://quotation.centurygr.com",
	}
	logger.Infof("🌍 CORS: allowing origins %v", allowedOrigins)

	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"ip":       c.ClientIP(),
		}).Info("request")
	})

	router.Use(middleware.RateLimiter())

	v1 := router.Group("/api/v1")
	{
		routes.SetupAuthRoutes(v1, db)
		v1.GET("/ws/state", wsHandler.HandleWS)

		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			routes.SetupClientRoutes(protected, st, wsHandler)
			routes.SetupBudgetRoutes(protected, st, wsHandler)
			routes.SetupQuotationRoutes(protected, st)
			routes.SetupUserRoutes(protected, db)
			routes.SetupOptionsRoutes(protected)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Infof("🚀 Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
