package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
)

// MembershipTransaction is one recharge of a customer's prepaid balance.
// Rows are append-only; nothing in the application updates or deletes
// them after creation.
type MembershipTransaction struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	CustomerID      string    `gorm:"not null;index" json:"customer_id"`
	Amount          int       `gorm:"not null" json:"amount"`
	PaymentMethod   string    `gorm:"not null" json:"payment_method"` // cash, card or transfer
	TransactionDate time.Time `gorm:"not null" json:"transaction_date"`
	Notes           string    `json:"notes,omitempty"`
}

func (t *MembershipTransaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return
}
