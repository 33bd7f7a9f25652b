package service

import (
	"fmt"                               // Income entry description
	"storefront_system/internal/domain" // Domain models
	"time"                              // Delivery date

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Orders manages the orders an entrepreneur receives and the fulfillment
// workflow that credits the ledger on delivery.
type Orders struct {
	DB *gorm.DB // Database handle
}

// NewOrders builds an Orders service
func NewOrders(db *gorm.DB) *Orders {
	return &Orders{DB: db}
}

// CreateOrderInput carries the validated fields for a new order
type CreateOrderInput struct {
	CustomerName    string  // Ordering customer, required
	CustomerContact string  // Customer contact, required
	Total           float64 // Order total, non-negative, immutable afterwards
	PickupLocation  string  // Optional pickup location
	Comments        string  // Optional comments
	PaymentMethod   string  // cash or transfer
}

// CreateOrder records a new pending order for the entrepreneur ownerID
func (o *Orders) CreateOrder(ownerID uint, in CreateOrderInput) (*domain.Order, error) {
	// Reject malformed input before touching the database
	if in.CustomerName == "" || in.CustomerContact == "" || in.Total < 0 {
		return nil, ErrInvalidInput
	}
	// Only the two known payment methods exist
	if in.PaymentMethod != domain.PaymentCash && in.PaymentMethod != domain.PaymentTransfer {
		return nil, ErrInvalidInput
	}
	// The receiving entrepreneur must exist
	var owner domain.User
	if err := o.DB.Where("id = ? AND role = ?", ownerID, domain.RoleEntrepreneur).First(&owner).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	order := domain.Order{
		CustomerName:    in.CustomerName,    // Ordering customer
		CustomerContact: in.CustomerContact, // Customer contact
		Total:           in.Total,           // Order total
		PickupLocation:  in.PickupLocation,  // Optional pickup location
		Comments:        in.Comments,        // Optional comments
		PaymentMethod:   in.PaymentMethod,   // Payment method
		OwnerID:         ownerID,            // Receiving entrepreneur
	}
	// Persist atomically
	err := o.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns the owner's orders, newest first
func (o *Orders) ListOrders(ownerID uint) ([]domain.Order, error) {
	var orders []domain.Order // Result slice
	err := o.DB.Where("owner_id = ?", ownerID).
		Order("created_at desc, id desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// MarkDelivered flips a pending order to delivered and credits the ledger
// with an income entry of the order total, dated today. Both writes commit
// in one transaction: a failure rolls back both. The flip is guarded by
// delivered = false in the UPDATE, so a concurrent or repeated call finds
// zero affected rows and produces no second income entry.
func (o *Orders) MarkDelivered(ownerID uint, orderID uint) (*domain.Order, *domain.FinanceEntry, error) {
	var order domain.Order        // Delivered order, loaded inside the transaction
	var entry domain.FinanceEntry // Income entry created alongside the flip
	err := o.DB.Transaction(func(tx *gorm.DB) error {
		// Compare-and-swap on the delivered flag, scoped by owner
		res := tx.Model(&domain.Order{}).
			Where("id = ? AND owner_id = ? AND delivered = ?", orderID, ownerID, false).
			Update("delivered", true)
		if res.Error != nil {
			return res.Error
		}
		// Missing, foreign, or already delivered: nothing to do
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		// Load the order for its total
		if err := tx.First(&order, orderID).Error; err != nil {
			return err
		}
		now := time.Now() // Local calendar day, not a UTC epoch truncation
		entry = domain.FinanceEntry{
			Type:        domain.EntryIncome,                                                        // Fulfillment always credits income
			Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), // Dated today
			Amount:      order.Total,                                                               // Exactly the order total
			Description: fmt.Sprintf("Income from order %d", order.ID),                             // References the order
			OwnerID:     ownerID,                                                                   // Same owner as the order
		}
		return tx.Create(&entry).Error // Second write of the atomic pair
	})
	if err != nil {
		if err != ErrNotFound {
			// Log the rollback with context
			logrus.WithFields(logrus.Fields{
				"owner_id": ownerID,     // Owning entrepreneur
				"order_id": orderID,     // Order that failed to deliver
				"error":    err.Error(), // Failure cause
			}).Error("Order delivery failed")
		}
		return nil, nil, err
	}
	return &order, &entry, nil
}
