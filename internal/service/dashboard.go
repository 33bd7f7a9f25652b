package service

import (
	"storefront_system/internal/domain" // Domain models

	"gorm.io/gorm" // GORM ORM library
)

// Dashboard aggregates an entrepreneur's storefront figures
type Dashboard struct {
	DB     *gorm.DB // Database handle
	Ledger *Ledger  // Balance is always recomputed through the ledger
}

// NewDashboard builds a Dashboard service
func NewDashboard(db *gorm.DB, ledger *Ledger) *Dashboard {
	return &Dashboard{DB: db, Ledger: ledger}
}

// Summary is the owner's storefront at a glance
type Summary struct {
	Products      int64   `json:"products"`       // Number of listed products
	Orders        int64   `json:"orders"`         // Total orders received
	PendingOrders int64   `json:"pending_orders"` // Orders not yet delivered
	Income        float64 `json:"income"`         // Sum of income entries
	Expense       float64 `json:"expense"`        // Sum of expense entries
	Balance       float64 `json:"balance"`        // Income minus expense
}

// Summarize gathers the counts and ledger totals for one owner
func (d *Dashboard) Summarize(ownerID uint) (*Summary, error) {
	var s Summary // Result
	// Product count
	if err := d.DB.Model(&domain.Product{}).Where("owner_id = ?", ownerID).Count(&s.Products).Error; err != nil {
		return nil, err
	}
	// Order counts, total and pending
	if err := d.DB.Model(&domain.Order{}).Where("owner_id = ?", ownerID).Count(&s.Orders).Error; err != nil {
		return nil, err
	}
	if err := d.DB.Model(&domain.Order{}).Where("owner_id = ? AND delivered = ?", ownerID, false).Count(&s.PendingOrders).Error; err != nil {
		return nil, err
	}
	// Ledger totals
	income, err := d.Ledger.sumByType(ownerID, domain.EntryIncome)
	if err != nil {
		return nil, err
	}
	expense, err := d.Ledger.sumByType(ownerID, domain.EntryExpense)
	if err != nil {
		return nil, err
	}
	s.Income = income            // Sum of income entries
	s.Expense = expense          // Sum of expense entries
	s.Balance = income - expense // Recomputed, never cached
	return &s, nil
}
