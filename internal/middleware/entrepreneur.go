package middleware

import (
	"net/http"                          // HTTP status codes
	"storefront_system/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// EntrepreneurOnlyMiddleware checks the user's role from the database on each
// request. The token carries a role claim, but the database stays the source
// of truth so a stale token cannot outlive a role change.
func EntrepreneurOnlyMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, userID).Error; err != nil {
			// If user not found or any error, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Entrepreneur access required"})
			return
		}
		// Check if user role is entrepreneur
		if user.Role != domain.RoleEntrepreneur {
			// If not entrepreneur, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Entrepreneur access required"})
			return
		}
		// If entrepreneur, proceed to the next handler
		c.Next()
	}
}
