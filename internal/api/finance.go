package api

import (
	"errors"                             // Sentinel error matching
	"net/http"                           // HTTP status codes
	"storefront_system/internal/service" // Core services
	"time"                               // Date parsing

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// AppendEntryRequest represents a manual ledger entry
type AppendEntryRequest struct {
	Type        string  `json:"type" binding:"required"`        // income or expense
	Date        string  `json:"date"`                           // YYYY-MM-DD, defaults to today
	Amount      float64 `json:"amount" binding:"required,gt=0"` // Strictly positive amount
	Description string  `json:"description"`                    // Optional description
}

// AppendEntryHandler records a manual income or expense entry
func AppendEntryHandler(ledger *service.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req AppendEntryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// The entry date defaults to today; a malformed date is rejected
		date := time.Now()
		if req.Date != "" {
			parsed, err := time.Parse("2006-01-02", req.Date)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
				return
			}
			date = parsed
		}
		// Append the entry
		entry, err := ledger.AppendEntry(ownerID.(uint), service.AppendEntryInput{
			Type:        req.Type,        // income or expense
			Date:        date,            // Parsed or defaulted date
			Amount:      req.Amount,      // Positive amount
			Description: req.Description, // Optional description
		})
		if err != nil {
			if errors.Is(err, service.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record entry"})
			return
		}
		// Log the new entry
		logrus.WithFields(logrus.Fields{
			"owner_id": ownerID,      // Owning entrepreneur
			"type":     entry.Type,   // Entry type
			"amount":   entry.Amount, // Entry amount
		}).Info("Ledger entry recorded")
		// Return the created entry
		c.JSON(http.StatusCreated, gin.H{"message": "Entry recorded", "entry": entry})
	}
}

// ListEntriesHandler returns the caller's entries of the requested type
func ListEntriesHandler(ledger *service.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// The type query parameter selects income or expense
		entries, err := ledger.ListEntries(ownerID.(uint), c.Query("type"))
		if err != nil {
			if errors.Is(err, service.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown entry type"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch entries"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": entries})
	}
}

// BalanceHandler returns the caller's balance. The value is recomputed from
// the entry set on every request and deliberately bypasses the cache: the
// ledger is append-only and the balance must always reflect it.
func BalanceHandler(ledger *service.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Recompute the balance
		balance, err := ledger.Balance(ownerID.(uint))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"balance": balance})
	}
}
