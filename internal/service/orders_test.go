package service

import (
	"storefront_system/internal/domain" // Domain models
	"testing"                           // Testing framework
	"time"                              // Entry date assertions

	"github.com/stretchr/testify/assert"  // Assertions
	"github.com/stretchr/testify/require" // Fatal assertions
)

// placeOrder is a shorthand for creating a valid pending order
func placeOrder(t *testing.T, orders *Orders, ownerID uint, total float64) *domain.Order {
	t.Helper()
	order, err := orders.CreateOrder(ownerID, CreateOrderInput{
		CustomerName:    "Carla Cliente",
		CustomerContact: "555-0101",
		Total:           total,
		PaymentMethod:   domain.PaymentCash,
	})
	require.NoError(t, err)
	return order
}

// New orders start pending with the given total
func TestCreateOrder(t *testing.T) {
	db := newTestDB(t)
	owner := seedEntrepreneur(t, db, "owner@test.local")
	orders := NewOrders(db)

	order := placeOrder(t, orders, owner.ID, 42.50)
	assert.False(t, order.Delivered)
	assert.Equal(t, 42.50, order.Total)
	assert.Equal(t, owner.ID, order.OwnerID)
	assert.False(t, order.CreatedAt.IsZero())
}

// Malformed orders and unknown entrepreneurs are rejected
func TestCreateOrderValidation(t *testing.T) {
	db := newTestDB(t)
	owner := seedEntrepreneur(t, db, "owner@test.local")
	orders := NewOrders(db)

	// Unknown payment method
	_, err := orders.CreateOrder(owner.ID, CreateOrderInput{
		CustomerName: "C", CustomerContact: "555", Total: 10, PaymentMethod: "barter",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Negative total
	_, err = orders.CreateOrder(owner.ID, CreateOrderInput{
		CustomerName: "C", CustomerContact: "555", Total: -1, PaymentMethod: domain.PaymentCash,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Addressing a nonexistent entrepreneur
	_, err = orders.CreateOrder(owner.ID+999, CreateOrderInput{
		CustomerName: "C", CustomerContact: "555", Total: 10, PaymentMethod: domain.PaymentCash,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

// Delivery flips the flag and credits exactly one income entry of the total
func TestMarkDeliveredAtomicPair(t *testing.T) {
	db := newTestDB(t)
	owner := seedEntrepreneur(t, db, "owner@test.local")
	orders := NewOrders(db)
	order := placeOrder(t, orders, owner.ID, 15.50)

	delivered, entry, err := orders.MarkDelivered(owner.ID, order.ID)
	require.NoError(t, err)
	assert.True(t, delivered.Delivered)
	assert.Equal(t, 15.50, entry.Amount)
	assert.Equal(t, domain.EntryIncome, entry.Type)
	assert.Equal(t, owner.ID, entry.OwnerID)
	assert.Contains(t, entry.Description, "order")

	// Exactly one income entry exists and it matches the order total
	var entries []domain.FinanceEntry
	require.NoError(t, db.Where("owner_id = ?", owner.ID).Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, 15.50, entries[0].Amount)
}

// A second delivery of the same order credits nothing
func TestMarkDeliveredIsOneShot(t *testing.T) {
	db := newTestDB(t)
	owner := seedEntrepreneur(t, db, "owner@test.local")
	orders := NewOrders(db)
	order := placeOrder(t, orders, owner.ID, 20)

	_, _, err := orders.MarkDelivered(owner.ID, order.ID)
	require.NoError(t, err)
	_, _, err = orders.MarkDelivered(owner.ID, order.ID)
	assert.ErrorIs(t, err, ErrNotFound) // Already delivered reads as not found

	// Still exactly one income entry
	var n int64
	require.NoError(t, db.Model(&domain.FinanceEntry{}).Where("owner_id = ?", owner.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

// A foreign or missing order is a no-op with no ledger writes
func TestMarkDeliveredOwnerIsolation(t *testing.T) {
	db := newTestDB(t)
	alice := seedEntrepreneur(t, db, "alice@test.local")
	bruno := seedEntrepreneur(t, db, "bruno@test.local")
	orders := NewOrders(db)
	order := placeOrder(t, orders, alice.ID, 9.99)

	// Bruno cannot deliver Alice's order
	_, _, err := orders.MarkDelivered(bruno.ID, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Missing order
	_, _, err = orders.MarkDelivered(alice.ID, order.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)

	// The order stays pending and no ledger entry exists anywhere
	var stored domain.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.False(t, stored.Delivered)
	var n int64
	require.NoError(t, db.Model(&domain.FinanceEntry{}).Count(&n).Error)
	assert.Zero(t, n)
}

// A failed ledger insert rolls back the delivered flag with it
func TestMarkDeliveredRollsBackOnLedgerFailure(t *testing.T) {
	db := newTestDB(t)
	owner := seedEntrepreneur(t, db, "owner@test.local")
	orders := NewOrders(db)
	order := placeOrder(t, orders, owner.ID, 33.33)

	// Sabotage the second write of the pair: without the ledger table the
	// income insert inside the transaction must fail
	require.NoError(t, db.Migrator().DropTable(&domain.FinanceEntry{}))

	_, _, err := orders.MarkDelivered(owner.ID, order.ID)
	require.Error(t, err)

	// The flag flip was rolled back along with the failed insert
	var stored domain.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.False(t, stored.Delivered)

	// With the table back, delivery succeeds and credits exactly once
	require.NoError(t, db.AutoMigrate(&domain.FinanceEntry{}))
	delivered, entry, err := orders.MarkDelivered(owner.ID, order.ID)
	require.NoError(t, err)
	assert.True(t, delivered.Delivered)
	assert.Equal(t, 33.33, entry.Amount)
	var n int64
	require.NoError(t, db.Model(&domain.FinanceEntry{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

// The income entry is dated today's calendar day in local time
func TestMarkDeliveredEntryDatedToday(t *testing.T) {
	db := newTestDB(t)
	owner := seedEntrepreneur(t, db, "owner@test.local")
	orders := NewOrders(db)
	order := placeOrder(t, orders, owner.ID, 5)

	_, entry, err := orders.MarkDelivered(owner.ID, order.ID)
	require.NoError(t, err)

	now := time.Now()
	y, m, d := entry.Date.In(now.Location()).Date()
	assert.Equal(t, now.Year(), y)
	assert.Equal(t, now.Month(), m)
	assert.Equal(t, now.Day(), d)
}

// ListOrders scopes by owner and returns newest first
func TestListOrders(t *testing.T) {
	db := newTestDB(t)
	alice := seedEntrepreneur(t, db, "alice@test.local")
	bruno := seedEntrepreneur(t, db, "bruno@test.local")
	orders := NewOrders(db)
	placeOrder(t, orders, alice.ID, 1)
	second := placeOrder(t, orders, alice.ID, 2)
	placeOrder(t, orders, bruno.ID, 3)

	list, err := orders.ListOrders(alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID) // Newest first
	for _, o := range list {
		assert.Equal(t, alice.ID, o.OwnerID)
	}
}

// The worked scenario: product at 15.50, order of 15.50, delivery, balance
func TestFulfillmentScenario(t *testing.T) {
	db := newTestDB(t)
	owner := seedEntrepreneur(t, db, "owner@test.local")
	catalog := NewCatalog(db, newFakeImageStore())
	ledger := NewLedger(db)
	orders := NewOrders(db)

	product, err := catalog.CreateProduct(owner.ID, CreateProductInput{
		Name: "Brownie box", Price: 15.50, Quantity: 3,
	}, nil, "")
	require.NoError(t, err)
	assert.Len(t, product.Code, 5)
	assert.Equal(t, 3, product.Quantity)

	order := placeOrder(t, orders, owner.ID, 15.50)
	_, entry, err := orders.MarkDelivered(owner.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 15.50, entry.Amount)

	// The ledger holds exactly one income entry and balances to the total
	income, err := ledger.ListEntries(owner.ID, domain.EntryIncome)
	require.NoError(t, err)
	require.Len(t, income, 1)
	balance, err := ledger.Balance(owner.ID)
	require.NoError(t, err)
	assert.InDelta(t, 15.50, balance, 1e-9)
}
