package api

import (
	"errors"                             // Sentinel error matching
	"net/http"                           // HTTP status codes
	"regexp"                             // Regular expressions
	"storefront_system/internal/service" // Core services
	"storefront_system/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// Request struct for registration
type RegisterRequest struct {
	Role         string `json:"role" binding:"required"`       // entrepreneur or client
	FirstName    string `json:"first_name" binding:"required"` // First name must be provided
	LastName     string `json:"last_name" binding:"required"`  // Last name must be provided
	Program      string `json:"program"`                       // Study program (optional)
	Email        string `json:"email" binding:"required"`      // Email must be provided
	Phone        string `json:"phone" binding:"required"`      // Phone must be provided
	Password     string `json:"password" binding:"required"`   // Password must be provided
	BusinessName string `json:"business_name"`                 // Storefront name, entrepreneurs only
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

// isValidEmail checks for a plausible email shape
func isValidEmail(email string) bool {
	matched, _ := regexp.MatchString(`^[^@\s]+@[^@\s]+\.[^@\s]+$`, email) // Local part, @, domain with a dot
	return matched                                                        // Return whether it matched
}

// isValidPassword checks if the password length is between 8 and 15 characters
func isValidPassword(password string) bool {
	return len(password) >= 8 && len(password) <= 15 // Return true if length is valid
}

// RegisterHandler creates an account and logs rejection reasons
func RegisterHandler(accounts *service.Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate email shape
		if !isValidEmail(req.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
			return
		}
		// Validate password length
		if !isValidPassword(req.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be 8-15 characters"})
			return
		}
		// Create the account
		user, err := accounts.Register(service.RegisterInput{
			Role:         req.Role,         // Selected role
			FirstName:    req.FirstName,    // First name
			LastName:     req.LastName,     // Last name
			Program:      req.Program,      // Study program
			Email:        req.Email,        // Login email
			Phone:        req.Phone,        // Contact phone
			Password:     req.Password,     // Plain password, hashed by the service
			BusinessName: req.BusinessName, // Storefront name
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrDuplicateEmail):
				// Registration conflict
				c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			case errors.Is(err, service.ErrInvalidInput):
				// Malformed fields
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			default:
				// Anything else is an internal failure
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			}
			return
		}
		// Return the created account
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": user})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(accounts *service.Accounts, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Verify the credentials
		user, err := accounts.Authenticate(req.Email, req.Password)
		if err != nil {
			// Unknown email and bad password look the same to the caller
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Generate JWT token carrying the user id and role
		token, err := utils.GenerateJWT(user.ID, user.Role, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}
