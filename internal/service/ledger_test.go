package service

import (
	"storefront_system/internal/domain" // Domain models
	"testing"                           // Testing framework
	"time"                              // Entry dates

	"github.com/stretchr/testify/assert"  // Assertions
	"github.com/stretchr/testify/require" // Fatal assertions
)

// day is a convenience constructor for entry dates
func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Balance equals sum(income) - sum(expense) regardless of append order
func TestBalanceMatchesEntrySums(t *testing.T) {
	db := newTestDB(t)
	owner := seedEntrepreneur(t, db, "owner@test.local")
	ledger := NewLedger(db)

	// Interleave income and expense appends
	appends := []AppendEntryInput{
		{Type: domain.EntryIncome, Date: day(2026, 8, 1), Amount: 100},
		{Type: domain.EntryExpense, Date: day(2026, 8, 2), Amount: 30.25},
		{Type: domain.EntryIncome, Date: day(2026, 8, 3), Amount: 12.75},
		{Type: domain.EntryExpense, Date: day(2026, 8, 4), Amount: 7.5},
		{Type: domain.EntryIncome, Date: day(2026, 8, 5), Amount: 1},
	}
	for _, in := range appends {
		_, err := ledger.AppendEntry(owner.ID, in)
		require.NoError(t, err)
	}

	balance, err := ledger.Balance(owner.ID)
	require.NoError(t, err)
	assert.InDelta(t, 100+12.75+1-30.25-7.5, balance, 1e-9)
}

// The balance tracks every later append, never a stale snapshot
func TestBalanceRecomputedAfterEachAppend(t *testing.T) {
	db := newTestDB(t)
	owner := seedEntrepreneur(t, db, "owner@test.local")
	ledger := NewLedger(db)

	balance, err := ledger.Balance(owner.ID)
	require.NoError(t, err)
	assert.Zero(t, balance) // Empty ledger balances to zero

	_, err = ledger.AppendEntry(owner.ID, AppendEntryInput{Type: domain.EntryIncome, Date: day(2026, 8, 1), Amount: 50})
	require.NoError(t, err)
	balance, err = ledger.Balance(owner.ID)
	require.NoError(t, err)
	assert.InDelta(t, 50, balance, 1e-9)

	_, err = ledger.AppendEntry(owner.ID, AppendEntryInput{Type: domain.EntryExpense, Date: day(2026, 8, 2), Amount: 20})
	require.NoError(t, err)
	balance, err = ledger.Balance(owner.ID)
	require.NoError(t, err)
	assert.InDelta(t, 30, balance, 1e-9)
}

// Zero, negative, and unknown-type entries are rejected
func TestAppendEntryRejectsInvalidInput(t *testing.T) {
	db := newTestDB(t)
	owner := seedEntrepreneur(t, db, "owner@test.local")
	ledger := NewLedger(db)

	_, err := ledger.AppendEntry(owner.ID, AppendEntryInput{Type: domain.EntryExpense, Date: day(2026, 8, 1), Amount: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ledger.AppendEntry(owner.ID, AppendEntryInput{Type: domain.EntryIncome, Date: day(2026, 8, 1), Amount: -5})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ledger.AppendEntry(owner.ID, AppendEntryInput{Type: "refund", Date: day(2026, 8, 1), Amount: 5})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Nothing was written
	var n int64
	require.NoError(t, db.Model(&domain.FinanceEntry{}).Count(&n).Error)
	assert.Zero(t, n)
}

// Entries list newest date first with a stable tie-break
func TestListEntriesOrdersByDateDescending(t *testing.T) {
	db := newTestDB(t)
	owner := seedEntrepreneur(t, db, "owner@test.local")
	ledger := NewLedger(db)

	// Appended out of date order, with two entries sharing a date
	_, err := ledger.AppendEntry(owner.ID, AppendEntryInput{Type: domain.EntryIncome, Date: day(2026, 8, 2), Amount: 2, Description: "middle"})
	require.NoError(t, err)
	_, err = ledger.AppendEntry(owner.ID, AppendEntryInput{Type: domain.EntryIncome, Date: day(2026, 8, 9), Amount: 9, Description: "newest"})
	require.NoError(t, err)
	_, err = ledger.AppendEntry(owner.ID, AppendEntryInput{Type: domain.EntryIncome, Date: day(2026, 8, 2), Amount: 3, Description: "middle-later"})
	require.NoError(t, err)

	entries, err := ledger.ListEntries(owner.ID, domain.EntryIncome)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "newest", entries[0].Description)
	assert.Equal(t, "middle", entries[1].Description)       // Same date: insertion order
	assert.Equal(t, "middle-later", entries[2].Description) // Same date: insertion order
}

// Listing filters by type and rejects unknown types
func TestListEntriesFiltersByType(t *testing.T) {
	db := newTestDB(t)
	owner := seedEntrepreneur(t, db, "owner@test.local")
	ledger := NewLedger(db)

	_, err := ledger.AppendEntry(owner.ID, AppendEntryInput{Type: domain.EntryIncome, Date: day(2026, 8, 1), Amount: 10})
	require.NoError(t, err)
	_, err = ledger.AppendEntry(owner.ID, AppendEntryInput{Type: domain.EntryExpense, Date: day(2026, 8, 1), Amount: 4})
	require.NoError(t, err)

	income, err := ledger.ListEntries(owner.ID, domain.EntryIncome)
	require.NoError(t, err)
	require.Len(t, income, 1)
	assert.Equal(t, domain.EntryIncome, income[0].Type)

	_, err = ledger.ListEntries(owner.ID, "savings")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// One owner's entries and balance never leak into another's
func TestLedgerOwnerIsolation(t *testing.T) {
	db := newTestDB(t)
	alice := seedEntrepreneur(t, db, "alice@test.local")
	bruno := seedEntrepreneur(t, db, "bruno@test.local")
	ledger := NewLedger(db)

	_, err := ledger.AppendEntry(alice.ID, AppendEntryInput{Type: domain.EntryIncome, Date: day(2026, 8, 1), Amount: 100})
	require.NoError(t, err)
	_, err = ledger.AppendEntry(bruno.ID, AppendEntryInput{Type: domain.EntryExpense, Date: day(2026, 8, 1), Amount: 40})
	require.NoError(t, err)

	aliceEntries, err := ledger.ListEntries(alice.ID, domain.EntryIncome)
	require.NoError(t, err)
	require.Len(t, aliceEntries, 1)
	assert.Equal(t, alice.ID, aliceEntries[0].OwnerID)

	brunoBalance, err := ledger.Balance(bruno.ID)
	require.NoError(t, err)
	assert.InDelta(t, -40, brunoBalance, 1e-9)

	aliceBalance, err := ledger.Balance(alice.ID)
	require.NoError(t, err)
	assert.InDelta(t, 100, aliceBalance, 1e-9)
}
