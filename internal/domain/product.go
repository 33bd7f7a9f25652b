package domain

// Product Model
type Product struct {
	ID            uint    `gorm:"primaryKey"`             // Primary key
	Code          string  `gorm:"size:5;unique;not null"` // 5-digit code, unique system-wide, immutable
	Name          string  `gorm:"size:200;not null"`      // Product name
	Price         float64 `gorm:"not null"`               // Unit price, non-negative
	Description   string  `gorm:"type:text"`              // Optional description
	Quantity      int     `gorm:"default:0"`              // Units in stock, non-negative
	ImageFilename string  `gorm:"size:300"`               // Stored image reference (optional)
	OwnerID       uint    `gorm:"index;not null"`         // Foreign key to the owning entrepreneur
}
