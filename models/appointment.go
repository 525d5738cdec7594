package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Appointment struct {
	ID         string `gorm:"primaryKey" json:"id"`
	CustomerID string `gorm:"not null;index" json:"customer_id"`
	ServiceID  string `gorm:"not null;index" json:"service_id"`
	Date       string `gorm:"not null;index" json:"date"` // YYYY-MM-DD
	Time       string `gorm:"not null" json:"time"`       // HH:MM, zero-padded
	Duration   int    `gorm:"not null" json:"duration"`   // in minutes
	Status     string `gorm:"not null;default:'scheduled'" json:"status"`
	Notes      string `json:"notes,omitempty"`

	// Recorded when an appointment is completed with payment.
	PaymentAmount int    `json:"payment_amount,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"` // cash, card, transfer or membership
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return
}

// AppointmentView is an Appointment joined with the customer and service
// rows it references. Display names are never stored on the appointment
// itself; they are resolved at read time.
type AppointmentView struct {
	Appointment
	CustomerName    string `json:"customer_name"`
	ServiceName     string `json:"service_name"`
	ServiceCategory string `json:"service_category"`
}
