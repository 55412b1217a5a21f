package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// City is a serviceable pickup city.
type City struct {
	ID           string `gorm:"primaryKey;size:36"`
	Name         string `gorm:"uniqueIndex;size:128;not null"`
	State        string `gorm:"size:128;not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	IsComingSoon bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c *City) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
