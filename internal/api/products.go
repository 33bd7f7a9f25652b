package api

import (
	"context"                            // Context for Redis operations
	"errors"                             // Sentinel error matching
	"io"                                 // Upload reader
	"mime/multipart"                     // Multipart upload handle
	"net/http"                           // HTTP status codes
	"storefront_system/internal/domain"  // Domain models
	"storefront_system/internal/service" // Core services
	"storefront_system/internal/utils"   // Utility functions
	"strconv"                            // String conversion
	"time"                               // Cache TTL

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// CreateProductHandler creates a product from a multipart form. Fields:
// name, price, quantity, description, plus an optional image file.
func CreateProductHandler(catalog *service.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		name := c.PostForm("name") // Product name
		// Price and quantity arrive as form strings and must parse
		price, err := strconv.ParseFloat(c.PostForm("price"), 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		quantity := 0 // Quantity defaults to zero when absent
		if q := c.PostForm("quantity"); q != "" {
			quantity, err = strconv.Atoi(q)
			if err != nil || quantity < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
				return
			}
		}
		// The image is optional
		var file multipart.File // Opened upload, nil when absent
		imageName := ""         // Original filename of the upload
		if header, err := c.FormFile("image"); err == nil {
			file, err = header.Open() // Open the uploaded file
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image upload"})
				return
			}
			defer file.Close()
			imageName = header.Filename // Keep the client name for sanitizing
		}
		// A missing upload reaches the catalog as a nil reader
		var image io.Reader
		if file != nil {
			image = file
		}
		product, err := catalog.CreateProduct(ownerID.(uint), service.CreateProductInput{
			Name:        name,                      // Product name
			Price:       price,                     // Parsed unit price
			Description: c.PostForm("description"), // Optional description
			Quantity:    quantity,                  // Parsed quantity
		}, image, imageName)
		if err != nil {
			if errors.Is(err, service.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
				return
			}
			// Log the failure with context
			logrus.WithFields(logrus.Fields{
				"owner_id": ownerID,     // Owning entrepreneur
				"name":     name,        // Product name
				"error":    err.Error(), // Failure cause
			}).Error("Product creation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Product creation failed"})
			return
		}
		// Log the creation
		logrus.WithFields(logrus.Fields{
			"owner_id": ownerID,      // Owning entrepreneur
			"code":     product.Code, // Generated product code
			"name":     product.Name, // Product name
		}).Info("Product created")
		// Invalidate the owner's product list cache
		if rdb, ok := c.MustGet("redisClient").(*redis.Client); ok {
			_ = utils.DeleteCache(context.Background(), rdb, utils.OwnerCacheKey("products", ownerID.(uint)))
		}
		// Return the created product
		c.JSON(http.StatusCreated, gin.H{"message": "Product created", "product": product})
	}
}

// ListProductsHandler returns the caller's products; the q query parameter
// filters by name or code substring. Unfiltered lists are cached briefly.
func ListProductsHandler(catalog *service.Catalog, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		query := c.Query("q") // Optional search term
		ctx := context.Background()
		cacheKey := utils.OwnerCacheKey("products", ownerID.(uint)) // Cache key for the full list
		// Only the unfiltered list is cached; searches always hit the database
		if query == "" {
			var cached []domain.Product // Cached product list
			found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
			if err == nil && found {
				c.JSON(http.StatusOK, gin.H{"products": cached, "cached": true})
				return
			}
		}
		// Fetch from the database
		products, err := catalog.ListProducts(ownerID.(uint), query)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if query == "" {
			// Cache the full list for 60 seconds
			_ = utils.SetCache(ctx, rdb, cacheKey, products, 60*time.Second)
		}
		c.JSON(http.StatusOK, gin.H{"products": products, "cached": false})
	}
}

// DeleteProductHandler removes one of the caller's products
func DeleteProductHandler(catalog *service.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Parse the product id from the path
		productID, err := strconv.Atoi(c.Param("id"))
		if err != nil || productID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		// Delete through the catalog; foreign products come back not found
		if err := catalog.DeleteProduct(ownerID.(uint), uint(productID)); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Product deletion failed"})
			return
		}
		// Log the deletion
		logrus.WithFields(logrus.Fields{
			"owner_id":   ownerID,   // Owning entrepreneur
			"product_id": productID, // Deleted product
		}).Info("Product deleted")
		// Invalidate the owner's product list cache
		if rdb, ok := c.MustGet("redisClient").(*redis.Client); ok {
			_ = utils.DeleteCache(context.Background(), rdb, utils.OwnerCacheKey("products", ownerID.(uint)))
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
