package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PricingRule assigns a base price to one level of the device hierarchy.
// At most one of the four scope columns is set; a rule with none of them set
// is the global default. Prices are whole currency units.
type PricingRule struct {
	ID         string  `gorm:"primaryKey;size:36"`
	CategoryID *string `gorm:"index;size:36"`
	DeviceID   *string `gorm:"index;size:36"`
	BrandID    *string `gorm:"index;size:36"`
	ModelID    *string `gorm:"index;size:36"`
	BasePrice  int64   `gorm:"not null"`
	MinPrice   int64
	MaxPrice   int64
	IsActive   bool `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r *PricingRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
