package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is the root of the device hierarchy
// (Category > Device > Brand > Model > Variant).
type Category struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"uniqueIndex;size:128;not null"`
	Slug        string `gorm:"uniqueIndex;size:128;not null"`
	Description string `gorm:"size:512"`
	Icon        string `gorm:"size:16"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Associations
	Devices []Device `gorm:"foreignKey:CategoryID"`
}

// Device is a device type within a category, e.g. "Smartphones".
type Device struct {
	ID         string `gorm:"primaryKey;size:36"`
	CategoryID string `gorm:"index;size:36;not null"`
	Name       string `gorm:"size:128;not null"`
	Slug       string `gorm:"uniqueIndex;size:128;not null"`
	IsActive   bool   `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Associations
	Category Category `gorm:"constraint:OnDelete:CASCADE"`
	Brands   []Brand  `gorm:"foreignKey:DeviceID"`
}

// Brand is a manufacturer within a device type.
type Brand struct {
	ID        string `gorm:"primaryKey;size:36"`
	DeviceID  string `gorm:"index;size:36;not null"`
	Name      string `gorm:"size:128;not null"`
	Slug      string `gorm:"uniqueIndex;size:128;not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Associations
	Device Device  `gorm:"constraint:OnDelete:CASCADE"`
	Models []Model `gorm:"foreignKey:BrandID"`
}

// Model is a sellable device model within a brand.
type Model struct {
	ID        string `gorm:"primaryKey;size:36"`
	BrandID   string `gorm:"index;size:36;not null"`
	Name      string `gorm:"size:128;not null"`
	Slug      string `gorm:"uniqueIndex;size:128;not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Associations
	Brand    Brand     `gorm:"constraint:OnDelete:CASCADE"`
	Variants []Variant `gorm:"foreignKey:ModelID"`
}

// Variant is an optional model variant (storage size etc.). It does not
// participate in pricing.
type Variant struct {
	ID          string `gorm:"primaryKey;size:36"`
	ModelID     string `gorm:"index;size:36;not null"`
	Name        string `gorm:"size:128;not null"`
	Description string `gorm:"size:256"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Associations
	Model Model `gorm:"constraint:OnDelete:CASCADE"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (d *Device) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (v *Variant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
