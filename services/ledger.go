// services/ledger.go
package services

import (
	"errors"
	"time"

	"nailbook-backend/models"

	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidAmount    = errors.New("recharge amount must be positive")
	ErrInvalidPayment   = errors.New("payment method must be cash, card or transfer")
)

// LedgerService maintains each customer's prepaid balance as the running
// total of their recharge transactions. The balance column and the
// transaction log must always agree; AuditBalances checks that they do.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// Recharge appends an immutable transaction record and adds its amount to
// the customer's balance. Both writes happen in one database transaction
// and the balance moves via an in-place increment, so concurrent
// recharges against the same customer cannot lose updates.
func (s *LedgerService) Recharge(customerID string, amount int, paymentMethod, notes string) (*models.Customer, *models.MembershipTransaction, error) {
	if amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}
	switch paymentMethod {
	case models.PaymentCash, models.PaymentCard, models.PaymentTransfer:
	default:
		return nil, nil, ErrInvalidPayment
	}

	var customer models.Customer
	txn := models.MembershipTransaction{
		CustomerID:      customerID,
		Amount:          amount,
		PaymentMethod:   paymentMethod,
		TransactionDate: time.Now(),
		Notes:           notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&customer, "id = ?", customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		if err := tx.Create(&txn).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Customer{}).Where("id = ?", customerID).
			Update("membership_balance", gorm.Expr("membership_balance + ?", amount)).Error; err != nil {
			return err
		}

		return tx.First(&customer, "id = ?", customerID).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return &customer, &txn, nil
}

// History returns the customer's recharge log, most recent first. The
// result is recomputed on every call; a customer without transactions
// gets an empty slice, not an error.
func (s *LedgerService) History(customerID string) ([]models.MembershipTransaction, error) {
	transactions := make([]models.MembershipTransaction, 0)
	err := s.db.Where("customer_id = ?", customerID).
		Order("transaction_date DESC, id DESC").
		Find(&transactions).Error
	return transactions, err
}
