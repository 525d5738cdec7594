package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Phone       string `gorm:"not null;index" json:"phone"`
	Email       string `json:"email,omitempty"`
	Preferences string `json:"preferences,omitempty"`

	// Mutated only through the membership ledger.
	MembershipBalance int `gorm:"not null;default:0" json:"membership_balance"`
}

// Assign UUID before creating; imported rows keep their ids
func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return
}
