package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bankcore/backend/internal/domain/banking"
	"github.com/bankcore/backend/internal/domain/identity"
)

// newTestDB opens an isolated in-memory SQLite database with the schema migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&banking.Customer{},
		&banking.Account{},
		&identity.User{},
	))

	return db
}

// newTestCustomer builds a valid customer for repository tests
func newTestCustomer(t *testing.T, firstName, lastName, ssnTin, email string) *banking.Customer {
	t.Helper()

	customer, err := banking.NewCustomer(firstName, lastName, "", "", ssnTin, email, banking.Address{
		Street:     "1 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
		Country:    "USA",
	})
	require.NoError(t, err)
	return customer
}
