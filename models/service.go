package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryNail = "nail"
	CategoryLash = "lash"
)

type Service struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Duration int    `gorm:"not null" json:"duration"` // in minutes
	Price    int    `gorm:"not null" json:"price"`
	Category string `gorm:"not null" json:"category"` // 'nail' or 'lash'
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return
}
