package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial is display data for the marketing pages.
type Testimonial struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:128;not null"`
	Location  string `gorm:"size:128"`
	Rating    int    `gorm:"not null"`
	Content   string `gorm:"size:1024;not null"`
	Image     string `gorm:"size:512"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlogPost is a published article, looked up by slug.
type BlogPost struct {
	ID          string `gorm:"primaryKey;size:36"`
	Title       string `gorm:"size:256;not null"`
	Slug        string `gorm:"uniqueIndex;size:256;not null"`
	Excerpt     string `gorm:"size:512"`
	Content     string `gorm:"type:text;not null"`
	Image       string `gorm:"size:512"`
	IsPublished bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Stats is the single row of headline impact numbers shown on the home page.
type Stats struct {
	ID               string  `gorm:"primaryKey;size:36"`
	DevicesCollected int64   `gorm:"not null"`
	EnergySavedKwh   float64 `gorm:"not null"`
	TreesPreserved   int64   `gorm:"not null"`
	EwasteKg         float64 `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (s *Stats) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
