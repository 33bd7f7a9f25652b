package service

import (
	"storefront_system/internal/domain" // Domain models
	"testing"                           // Testing framework

	"github.com/stretchr/testify/assert"  // Assertions
	"github.com/stretchr/testify/require" // Fatal assertions
)

// The summary reflects products, orders, and the recomputed balance
func TestDashboardSummary(t *testing.T) {
	db := newTestDB(t)
	owner := seedEntrepreneur(t, db, "owner@test.local")
	other := seedEntrepreneur(t, db, "other@test.local")
	catalog := NewCatalog(db, newFakeImageStore())
	ledger := NewLedger(db)
	orders := NewOrders(db)
	dashboard := NewDashboard(db, ledger)

	// Two products, one of them someone else's
	_, err := catalog.CreateProduct(owner.ID, CreateProductInput{Name: "Pins", Price: 2}, nil, "")
	require.NoError(t, err)
	_, err = catalog.CreateProduct(other.ID, CreateProductInput{Name: "Stickers", Price: 1}, nil, "")
	require.NoError(t, err)

	// Two orders, one delivered (which credits income 25)
	first := placeOrder(t, orders, owner.ID, 25)
	placeOrder(t, orders, owner.ID, 40)
	_, _, err = orders.MarkDelivered(owner.ID, first.ID)
	require.NoError(t, err)

	// One manual expense
	_, err = ledger.AppendEntry(owner.ID, AppendEntryInput{
		Type: domain.EntryExpense, Date: day(2026, 8, 10), Amount: 10, Description: "packaging",
	})
	require.NoError(t, err)

	summary, err := dashboard.Summarize(owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, summary.Products)
	assert.EqualValues(t, 2, summary.Orders)
	assert.EqualValues(t, 1, summary.PendingOrders)
	assert.InDelta(t, 25, summary.Income, 1e-9)
	assert.InDelta(t, 10, summary.Expense, 1e-9)
	assert.InDelta(t, 15, summary.Balance, 1e-9)
}
