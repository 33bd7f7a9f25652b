package domain

import "time" // Entry date

// Entry type values for FinanceEntry
const (
	EntryIncome  = "income"  // Money coming in
	EntryExpense = "expense" // Money going out
)

// FinanceEntry Model: ledger rows are append-only, no update or delete exists
type FinanceEntry struct {
	ID          uint      `gorm:"primaryKey"`       // Primary key
	Type        string    `gorm:"size:10;not null"` // Entry type: income or expense
	Date        time.Time `gorm:"not null"`         // Calendar date of the entry
	Amount      float64   `gorm:"not null"`         // Positive monetary amount
	Description string    `gorm:"type:text"`        // Optional description
	OwnerID     uint      `gorm:"index;not null"`   // Foreign key to the owning entrepreneur
}
