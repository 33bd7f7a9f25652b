package api

import (
	"context"                            // Context for Redis operations
	"errors"                             // Sentinel error matching
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

// CreateOrderRequest represents an order placed with an entrepreneur
type CreateOrderRequest struct {
	OwnerID         uint    `json:"owner_id" binding:"required"`         // Receiving entrepreneur
	CustomerName    string  `json:"customer_name" binding:"required"`    // Ordering customer
	CustomerContact string  `json:"customer_contact" binding:"required"` // Customer contact
	Total           float64 `json:"total" binding:"gte=0"`               // Order total
	PickupLocation  string  `json:"pickup_location"`                     // Optional pickup location
	Comments        string  `json:"comments"`                            // Optional comments
	PaymentMethod   string  `json:"payment_method" binding:"required"`   // cash or transfer
}

// CreateOrderHandler records a new pending order for an entrepreneur.
// Any authenticated user (typically a client) may place one.
func CreateOrderHandler(orders *service.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Create the order
		order, err := orders.CreateOrder(req.OwnerID, service.CreateOrderInput{
			CustomerName:    req.CustomerName,    // Ordering customer
			CustomerContact: req.CustomerContact, // Customer contact
			Total:           req.Total,           // Order total
			PickupLocation:  req.PickupLocation,  // Optional pickup location
			Comments:        req.Comments,        // Optional comments
			PaymentMethod:   req.PaymentMethod,   // Payment method
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidInput):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			case errors.Is(err, service.ErrNotFound):
				// The addressed entrepreneur does not exist
				c.JSON(http.StatusNotFound, gin.H{"error": "Entrepreneur not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Order creation failed"})
			}
			return
		}
		// Log the new order
		logrus.WithFields(logrus.Fields{
			"owner_id": order.OwnerID, // Receiving entrepreneur
			"order_id": order.ID,      // New order
			"total":    order.Total,   // Order total
		}).Info("Order placed")
		// Invalidate the entrepreneur's order list cache
		if rdb, ok := c.MustGet("redisClient").(*redis.Client); ok {
			_ = utils.DeleteCache(context.Background(), rdb, utils.OwnerCacheKey("orders", order.OwnerID))
		}
		// Return the created order
		c.JSON(http.StatusCreated, gin.H{"message": "Order placed", "order": order})
	}
}

// ListOrdersHandler returns the caller's orders, newest first, cached briefly
func ListOrdersHandler(orders *service.Orders, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		ctx := context.Background()
		cacheKey := utils.OwnerCacheKey("orders", ownerID.(uint)) // Cache key for the order list
		var cached []domain.Order                                 // Cached order list
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		// If found in cache, return it
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"orders": cached, "cached": true})
			return
		}
		// Fetch from the database
		list, err := orders.ListOrders(ownerID.(uint))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		// Cache the list for 60 seconds
		_ = utils.SetCache(ctx, rdb, cacheKey, list, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"orders": list, "cached": false})
	}
}

// DeliverOrderHandler marks one of the caller's orders delivered, which
// also credits the ledger with the order total.
func DeliverOrderHandler(orders *service.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Parse the order id from the path
		orderID, err := strconv.Atoi(c.Param("id"))
		if err != nil || orderID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		// Flip the order and credit the ledger in one transaction
		order, entry, err := orders.MarkDelivered(ownerID.(uint), uint(orderID))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				// Missing, foreign, or already delivered: a notice, not a failure
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found or already delivered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Delivery failed"})
			return
		}
		// Log the fulfillment
		logrus.WithFields(logrus.Fields{
			"owner_id":  ownerID,                         // Owning entrepreneur
			"order_id":  order.ID,                        // Delivered order
			"amount":    entry.Amount,                    // Credited income
			"type":      "delivery",                      // Workflow step
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Order delivered and income recorded")
		// Invalidate the owner's order list cache
		if rdb, ok := c.MustGet("redisClient").(*redis.Client); ok {
			_ = utils.DeleteCache(context.Background(), rdb, utils.OwnerCacheKey("orders", ownerID.(uint)))
		}
		// Return the mutated order and the new ledger entry
		c.JSON(http.StatusOK, gin.H{
			"message": "Order marked as delivered and income recorded", // User notice
			"order":   order,                                           // Delivered order
			"entry":   entry,                                           // New income entry
		})
	}
}
