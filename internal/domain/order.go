package domain

import "time" // Creation timestamp

// Payment method values for Order
const (
	PaymentCash     = "cash"     // Paid on pickup
	PaymentTransfer = "transfer" // Paid by bank transfer
)

// Order Model
type Order struct {
	ID              uint      `gorm:"primaryKey"`        // Primary key
	CustomerName    string    `gorm:"size:200;not null"` // Name of the ordering customer
	CustomerContact string    `gorm:"size:50;not null"`  // Customer contact (phone or email)
	CreatedAt       time.Time `gorm:"autoCreateTime"`    // When the order was placed
	Total           float64   `gorm:"not null"`          // Order total, immutable after creation
	PickupLocation  string    `gorm:"size:200"`          // Optional pickup location
	Comments        string    `gorm:"type:text"`         // Optional comments
	PaymentMethod   string    `gorm:"size:50;not null"`  // Payment method: cash or transfer
	Delivered       bool      `gorm:"default:false"`     // Flips false->true exactly once
	OwnerID         uint      `gorm:"index;not null"`    // Foreign key to the receiving entrepreneur
}
