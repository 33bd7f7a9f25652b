package main

import (
	"context"                               // context package is needed for Redis operations
	"log"                                   // log package is needed for logging
	"storefront_system/internal/api"        // Custom package for API handlers
	"storefront_system/internal/config"     // Custom package for configuration
	"storefront_system/internal/middleware" // Custom package for middleware
	"storefront_system/internal/service"    // Core services
	"storefront_system/internal/storage"    // Product image storage

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Setup product image storage
	images, err := storage.NewDiskImageStore(cfg.UploadDir)
	if err != nil {
		logrus.Fatalf("failed to create upload directory: %v", err)
	}

	// Build the core services
	accounts := service.NewAccounts(db)           // Registration and login
	catalog := service.NewCatalog(db, images)     // Product management
	ledger := service.NewLedger(db)               // Income/expense ledger
	orders := service.NewOrders(db)               // Orders and fulfillment
	dashboard := service.NewDashboard(db, ledger) // Storefront summary

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/auth/register", api.RegisterHandler(accounts))          // Registration endpoint
	r.POST("/auth/login", api.LoginHandler(accounts, cfg.JWTSecret)) // Login endpoint

	// Middleware injecting the Redis client into the request context
	withRedis := func(c *gin.Context) {
		c.Set("redisClient", redisClient)
		c.Next()
	}

	// Order placement (any authenticated user, typically a client)
	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), withRedis)
	orderGroup.POST("", api.CreateOrderHandler(orders)) // Place order endpoint

	// Storefront management routes (entrepreneurs only)
	storeGroup := r.Group("/store")
	// Protect management routes with JWT and the entrepreneur gate
	storeGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.EntrepreneurOnlyMiddleware(db), withRedis)
	storeGroup.POST("/products", api.CreateProductHandler(catalog))            // Create product endpoint
	storeGroup.GET("/products", api.ListProductsHandler(catalog, redisClient)) // List/search products endpoint
	storeGroup.DELETE("/products/:id", api.DeleteProductHandler(catalog))      // Delete product endpoint
	storeGroup.GET("/orders", api.ListOrdersHandler(orders, redisClient))      // List orders endpoint
	storeGroup.POST("/orders/:id/deliver", api.DeliverOrderHandler(orders))    // Mark delivered endpoint
	storeGroup.POST("/finance/entries", api.AppendEntryHandler(ledger))        // Manual ledger entry endpoint
	storeGroup.GET("/finance/entries", api.ListEntriesHandler(ledger))         // List ledger entries endpoint
	storeGroup.GET("/finance/balance", api.BalanceHandler(ledger))             // Balance endpoint
	storeGroup.GET("/dashboard", api.DashboardHandler(dashboard))              // Summary endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
