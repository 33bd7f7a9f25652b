package domain

// Role values for User
const (
	RoleEntrepreneur = "entrepreneur" // Owns products, orders and ledger entries
	RoleClient       = "client"       // May log in and place orders
)

// User Model
type User struct {
	ID             uint    `gorm:"primaryKey"`                 // Primary key
	EntrepreneurID *string `gorm:"size:10;unique"`             // 10-digit identifier, entrepreneurs only
	FirstName      string  `gorm:"size:120;not null"`          // First name
	LastName       string  `gorm:"size:120;not null"`          // Last name
	Program        string  `gorm:"size:120"`                   // Study program (optional)
	Email          string  `gorm:"size:150;unique;not null"`   // Unique email used for login
	Phone          string  `gorm:"size:30;not null"`           // Contact phone
	PasswordHash   string  `gorm:"size:255;not null" json:"-"` // Hashed password, never serialized
	Role           string  `gorm:"size:20;not null"`           // Role: entrepreneur or client
	BusinessName   string  `gorm:"size:200"`                   // Storefront name, entrepreneurs only
}
