package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/maya-reeves/wardrobe-api/config"
	"github.com/maya-reeves/wardrobe-api/controllers"
	"github.com/maya-reeves/wardrobe-api/middleware"
	"github.com/maya-reeves/wardrobe-api/models"
	"github.com/maya-reeves/wardrobe-api/services"
)

func main() {
	log.Println("Starting Wardrobe API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.Outfit{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Initialize external services
	s3Service, err := services.InitS3Service()
	if err != nil {
		log.Fatalf("Failed to initialize S3 service: %v", err)
	}
	removalService := services.InitRemovalService(cfg)
	services.InitImageService(removalService, s3Service)
	services.InitWeatherService(cfg)

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.Default())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Authenticated routes
		auth := v1.Group("")
		auth.Use(middleware.EnsureValidToken(cfg))
		{
			auth.POST("/users", controllers.CreateUser)
			auth.GET("/users/me", controllers.GetMyProfile)

			auth.POST("/items", controllers.CreateItem)
			auth.GET("/items", controllers.ListItems)
			auth.GET("/items/grouped", controllers.GetGroupedItems)
			auth.DELETE("/items", controllers.DeleteItems)

			auth.POST("/outfits", controllers.CreateOutfit)
			auth.GET("/outfits", controllers.GetOutfitsByMonth)
			auth.GET("/outfits/date/:date", controllers.GetOutfitForDate)

			auth.POST("/recommendations", controllers.GetRecommendation)

			auth.POST("/uploads", controllers.UploadImage)

			auth.GET("/weather/forecast", controllers.GetWeatherForecast)
		}
	}

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Wardrobe API is running",
	})
}
