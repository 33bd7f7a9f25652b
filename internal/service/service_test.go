package service

import (
	"fmt"                               // Per-test database names
	"storefront_system/internal/domain" // Domain models
	"strings"                           // Test name normalization
	"testing"                           // Testing framework

	"github.com/stretchr/testify/require" // Fatal assertions
	"gorm.io/driver/sqlite"               // SQLite driver for tests
	"gorm.io/gorm"                        // GORM ORM library
	"gorm.io/gorm/logger"                 // Silence GORM logging in tests
)

// newTestDB opens a fresh in-memory database for one test. The database is
// named after the test so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()) // Safe database name
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)      // One shared in-memory DB per test
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Keep test output readable
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Product{}, &domain.Order{}, &domain.FinanceEntry{}))
	return db
}

// seedEntrepreneur inserts an entrepreneur account directly
func seedEntrepreneur(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	id := fmt.Sprintf("%010d", hashString(email)) // Deterministic 10-digit identifier per email
	user := domain.User{
		EntrepreneurID: &id,
		FirstName:      "Test",
		LastName:       "Owner",
		Email:          email,
		Phone:          "5550000",
		PasswordHash:   "x",
		Role:           domain.RoleEntrepreneur,
		BusinessName:   "Test Store",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// hashString gives a small stable number for seeding identifiers
func hashString(s string) uint32 {
	var h uint32 = 2166136261 // FNV-1a
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}
