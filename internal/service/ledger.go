package service

import (
	"storefront_system/internal/domain" // Domain models
	"time"                              // Entry dates

	"gorm.io/gorm" // GORM ORM library
)

// Ledger manages an entrepreneur's append-only income/expense entries
type Ledger struct {
	DB *gorm.DB // Database handle
}

// NewLedger builds a Ledger service
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{DB: db}
}

// AppendEntryInput carries the validated fields for a manual ledger entry
type AppendEntryInput struct {
	Type        string    // income or expense
	Date        time.Time // Calendar date of the entry
	Amount      float64   // Must be strictly positive
	Description string    // Optional description
}

// AppendEntry records one ledger entry. Entries are write-once: the ledger
// exposes no update or delete.
func (l *Ledger) AppendEntry(ownerID uint, in AppendEntryInput) (*domain.FinanceEntry, error) {
	// Manual amounts must be strictly positive
	if in.Amount <= 0 {
		return nil, ErrInvalidInput
	}
	// Only the two known entry types exist
	if in.Type != domain.EntryIncome && in.Type != domain.EntryExpense {
		return nil, ErrInvalidInput
	}
	entry := domain.FinanceEntry{
		Type:        in.Type,        // income or expense
		Date:        in.Date,        // Entry date
		Amount:      in.Amount,      // Positive amount
		Description: in.Description, // Optional description
		OwnerID:     ownerID,        // Owning entrepreneur
	}
	// Persist atomically
	err := l.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListEntries returns the owner's entries of the given type, newest date
// first, with a stable id tie-break.
func (l *Ledger) ListEntries(ownerID uint, entryType string) ([]domain.FinanceEntry, error) {
	if entryType != domain.EntryIncome && entryType != domain.EntryExpense {
		return nil, ErrInvalidInput // Unknown entry type
	}
	var entries []domain.FinanceEntry // Result slice
	err := l.DB.Where("owner_id = ? AND type = ?", ownerID, entryType).
		Order("date desc, id asc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Balance computes sum(income) - sum(expense) for the owner. The value is
// recomputed from the entry set on every call and never cached, so it always
// reflects entries appended since the last read.
func (l *Ledger) Balance(ownerID uint) (float64, error) {
	income, err := l.sumByType(ownerID, domain.EntryIncome) // Total income
	if err != nil {
		return 0, err
	}
	expense, err := l.sumByType(ownerID, domain.EntryExpense) // Total expense
	if err != nil {
		return 0, err
	}
	return income - expense, nil
}

// sumByType totals the owner's entries of one type
func (l *Ledger) sumByType(ownerID uint, entryType string) (float64, error) {
	var total float64 // Sum of amounts, 0 when no entries exist
	err := l.DB.Model(&domain.FinanceEntry{}).
		Where("owner_id = ? AND type = ?", ownerID, entryType).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
