package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Condition is a device grading bucket. Its multiplier scales the base price
// of a matched pricing rule. Reference data, effectively immutable.
type Condition struct {
	ID          string  `gorm:"primaryKey;size:36"`
	Name        string  `gorm:"uniqueIndex;size:64;not null"`
	Description string  `gorm:"size:256"`
	Multiplier  float64 `gorm:"not null"`
	IsActive    bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c *Condition) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
