package api

import (
	"net/http"                           // HTTP status codes
	"storefront_system/internal/service" // Core services

	"github.com/gin-gonic/gin" // Gin web framework
)

// DashboardHandler returns the caller's storefront summary: product and
// order counts plus the ledger totals. The balance inside the summary is
// recomputed per request, never served from cache.
func DashboardHandler(dashboard *service.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Gather the summary
		summary, err := dashboard.Summarize(ownerID.(uint))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"summary": summary})
	}
}
