package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/mihaianh/wedding_backend/controllers"
	"github.com/mihaianh/wedding_backend/database"
	"github.com/mihaianh/wedding_backend/docs"
	"github.com/mihaianh/wedding_backend/engine"
	"github.com/mihaianh/wedding_backend/middleware"
	"github.com/mihaianh/wedding_backend/models"
	"github.com/mihaianh/wedding_backend/notification"
	"github.com/mihaianh/wedding_backend/repository"
	"github.com/mihaianh/wedding_backend/websocket"
)

// @title           Wedding RSVP API
// @version         1.0
// @description     API Server for the wedding RSVP application
// @host            localhost:8080
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	locationsEnv := os.Getenv("LOCATIONS")
	if locationsEnv == "" {
		locationsEnv = "ROMANIA,VIETNAM"
	}
	locations := models.ParseLocations(locationsEnv)

	// Initialize database
	database.Connect()
	database.Migrate(locations)
	database.SeedOrganizer()

	// One response repository per location
	registry := repository.NewRegistry()
	for _, loc := range locations {
		registry.Register(loc, repository.NewGormRSVPRepository(database.DB, loc))
	}

	directory := repository.NewGormGuestDirectory(database.DB)
	resolver := engine.NewResolver(directory, registry)
	rsvpEngine := engine.NewEngine(resolver, registry)

	guestController := controllers.NewGuestController(resolver)
	rsvpController := controllers.NewRSVPController(rsvpEngine, websocket.BroadcastToLocation)
	notificationController := controllers.NewNotificationController(notification.NewClient())
	adminController := controllers.NewAdminController(database.DB, registry)

	// Set up Swagger info
	docs.SwaggerInfo.Host = "localhost:" + os.Getenv("PORT")
	if docs.SwaggerInfo.Host == "localhost:" {
		docs.SwaggerInfo.Host = "localhost:8080"
	}

	// Set up router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Guest-facing routes: possession of an invite code is the only
	// credential, so no auth middleware here
	api := router.Group("/api")
	{
		api.POST("/invites/verify", guestController.VerifyInvite)
		api.POST("/rsvp", rsvpController.SubmitRSVP)
		api.POST("/notifications", notificationController.SendNotification)
	}

	// Organizer routes
	api.POST("/admin/login", adminController.Login)

	admin := router.Group("/api/admin")
	admin.Use(middleware.JWTAuth())
	{
		admin.POST("/guests", adminController.CreateGuest)
		admin.GET("/guests", adminController.ListGuests)
		admin.GET("/rsvps", adminController.ListResponses)
	}

	// Organizer dashboard live feed
	router.GET("/ws", websocket.HandleConnection)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server running on port %s", port)
	log.Printf("Swagger documentation available at http://localhost:%s/swagger/index.html", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
