package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/time/rate"

	"github.com/mirado/doctors-portal-api/internal/cache"
	"github.com/mirado/doctors-portal-api/internal/config"
	"github.com/mirado/doctors-portal-api/internal/handlers"
	"github.com/mirado/doctors-portal-api/internal/middleware"
	"github.com/mirado/doctors-portal-api/internal/services"
	"github.com/mirado/doctors-portal-api/internal/store"
	"github.com/mirado/doctors-portal-api/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET is NOT SET.")
	}
	utils.InitJWT(cfg.JWTSecret)

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDatabase)
	log.Println("Successfully connected to MongoDB!")

	// --- Collaborators ---
	dataStore := store.NewMongoStore(db)
	catalogCache := cache.New(cfg.RedisAddr)
	notificationSvc := services.NewNotificationService(cfg.TextbeltKey)

	h := handlers.NewHandler(dataStore, catalogCache, notificationSvc)

	// --- Gin Router ---
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	bookingLimiter := middleware.NewRateLimiter(rate.Every(time.Second), 5)

	// --- Routes ---
	r.GET("/", h.Home)
	r.GET("/service", h.ListServices)
	r.GET("/available", h.GetAvailable)

	r.POST("/booking", bookingLimiter.Limit(), h.CreateBooking)
	r.GET("/booking", middleware.AuthMiddleware(), h.ListBookings)

	r.GET("/user", middleware.AuthMiddleware(), h.ListUsers)
	r.GET("/admin/:email", h.CheckAdmin)
	r.PUT("/user/*rest", h.PutUser(middleware.AuthMiddleware()))

	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
