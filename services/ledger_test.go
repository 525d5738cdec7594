package services

import (
	"testing"

	"nailbook-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A fresh connection would get its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Service{},
		&models.Appointment{},
		&models.MembershipTransaction{},
	))
	return db
}

func createCustomer(t *testing.T, db *gorm.DB, name string) models.Customer {
	t.Helper()
	customer := models.Customer{Name: name, Phone: "010-1234-5678"}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func TestRecharge(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewLedgerService(db)
	kim := createCustomer(t, db, "Kim")

	updated, txn, err := ledger.Recharge(kim.ID, 50000, models.PaymentCard, "")
	require.NoError(t, err)
	assert.Equal(t, 50000, updated.MembershipBalance)
	assert.NotEmpty(t, txn.ID)
	assert.Equal(t, kim.ID, txn.CustomerID)
	assert.Equal(t, 50000, txn.Amount)
	assert.Equal(t, models.PaymentCard, txn.PaymentMethod)
	assert.False(t, txn.TransactionDate.IsZero())

	history, err := ledger.History(kim.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, txn.ID, history[0].ID)

	updated, _, err = ledger.Recharge(kim.ID, 30000, models.PaymentCash, "birthday deposit")
	require.NoError(t, err)
	assert.Equal(t, 80000, updated.MembershipBalance)

	history, err = ledger.History(kim.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	sum := 0
	for _, entry := range history {
		sum += entry.Amount
	}
	assert.Equal(t, updated.MembershipBalance, sum)
}

func TestRechargeUnknownCustomer(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewLedgerService(db)

	_, _, err := ledger.Recharge("no-such-customer", 10000, models.PaymentCash, "")
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	// No transaction row may survive the failed recharge
	var count int64
	require.NoError(t, db.Model(&models.MembershipTransaction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRechargeRejectsNonPositiveAmount(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewLedgerService(db)
	kim := createCustomer(t, db, "Kim")

	for _, amount := range []int{0, -1, -50000} {
		_, _, err := ledger.Recharge(kim.ID, amount, models.PaymentCard, "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}

	var reloaded models.Customer
	require.NoError(t, db.First(&reloaded, "id = ?", kim.ID).Error)
	assert.Zero(t, reloaded.MembershipBalance)

	var count int64
	require.NoError(t, db.Model(&models.MembershipTransaction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRechargeRejectsUnknownPaymentMethod(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewLedgerService(db)
	kim := createCustomer(t, db, "Kim")

	_, _, err := ledger.Recharge(kim.ID, 10000, "bitcoin", "")
	assert.ErrorIs(t, err, ErrInvalidPayment)
}

func TestHistoryEmptyWithoutTransactions(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewLedgerService(db)
	kim := createCustomer(t, db, "Kim")

	history, err := ledger.History(kim.ID)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)

	history, err = ledger.History("never-seen")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAuditBalances(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewLedgerService(db)
	kim := createCustomer(t, db, "Kim")
	lee := createCustomer(t, db, "Lee")

	_, _, err := ledger.Recharge(kim.ID, 50000, models.PaymentCard, "")
	require.NoError(t, err)
	_, _, err = ledger.Recharge(kim.ID, 30000, models.PaymentCash, "")
	require.NoError(t, err)
	_, _, err = ledger.Recharge(lee.ID, 20000, models.PaymentTransfer, "")
	require.NoError(t, err)

	mismatches, err := ledger.AuditBalances()
	require.NoError(t, err)
	assert.Empty(t, mismatches)

	// Corrupt one balance behind the ledger's back
	require.NoError(t, db.Model(&models.Customer{}).Where("id = ?", lee.ID).
		Update("membership_balance", 99999).Error)

	mismatches, err = ledger.AuditBalances()
	require.NoError(t, err)
	require.Len(t, mismatches, 1)
	assert.Equal(t, lee.ID, mismatches[0].CustomerID)
	assert.Equal(t, 99999, mismatches[0].Balance)
	assert.Equal(t, 20000, mismatches[0].LedgerSum)
}
