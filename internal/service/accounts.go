package service

import (
	"storefront_system/internal/domain" // Domain models
	"storefront_system/internal/utils"  // Unique identifier generation
	"strings"                           // Email normalization

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// EntrepreneurIDLength is the digit count of generated entrepreneur identifiers
const EntrepreneurIDLength = 10

// Accounts handles registration and login for both roles
type Accounts struct {
	DB *gorm.DB // Database handle
}

// NewAccounts builds an Accounts service
func NewAccounts(db *gorm.DB) *Accounts {
	return &Accounts{DB: db}
}

// RegisterInput carries the validated fields for a new account
type RegisterInput struct {
	Role         string // entrepreneur or client
	FirstName    string // First name, required
	LastName     string // Last name, required
	Program      string // Study program (optional)
	Email        string // Login email, unique
	Phone        string // Contact phone, required
	Password     string // Plain password, hashed before storage
	BusinessName string // Storefront name, entrepreneurs only
}

// Register creates a user. Entrepreneurs additionally receive a generated
// unique 10-digit identifier, never reused while any user holds it.
func (a *Accounts) Register(in RegisterInput) (*domain.User, error) {
	// Reject malformed input before touching the database
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Phone == "" || in.Password == "" {
		return nil, ErrInvalidInput
	}
	if in.Role != domain.RoleEntrepreneur && in.Role != domain.RoleClient {
		return nil, ErrInvalidInput // Only the two flat roles exist
	}
	email := strings.ToLower(in.Email) // Normalize for the uniqueness check
	// Reject an already registered email
	var n int64
	if err := a.DB.Model(&domain.User{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrDuplicateEmail
	}
	// Hash the password
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := domain.User{
		FirstName:    in.FirstName, // First name
		LastName:     in.LastName,  // Last name
		Program:      in.Program,   // Study program
		Email:        email,        // Normalized email
		Phone:        in.Phone,     // Contact phone
		PasswordHash: string(hash), // Hashed password
		Role:         in.Role,      // Selected role
	}
	// Entrepreneurs carry a generated identifier and a storefront name
	if in.Role == domain.RoleEntrepreneur {
		id, err := utils.GenerateUniqueCode(EntrepreneurIDLength, func(code string) (bool, error) {
			var taken int64 // Users already holding the identifier
			if err := a.DB.Model(&domain.User{}).Where("entrepreneur_id = ?", code).Count(&taken).Error; err != nil {
				return false, err
			}
			return taken > 0, nil
		})
		if err != nil {
			return nil, err
		}
		user.EntrepreneurID = &id           // Generated 10-digit identifier
		user.BusinessName = in.BusinessName // Storefront name
	}
	// Persist atomically; the unique index backs up the pre-check under races
	err = a.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	})
	if err != nil {
		// Only report a duplicate when the email really is taken, so an
		// unrelated database failure never masquerades as a conflict
		var again int64
		if a.DB.Model(&domain.User{}).Where("email = ?", email).Count(&again).Error == nil && again > 0 {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies the credentials and returns the matching user
func (a *Accounts) Authenticate(email, password string) (*domain.User, error) {
	var user domain.User // Candidate user
	if err := a.DB.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials // Unknown email
	}
	// Compare the provided password with the stored hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
