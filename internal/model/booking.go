package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatus is the back-office lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending     BookingStatus = "PENDING"
	StatusConfirmed   BookingStatus = "CONFIRMED"
	StatusPicked      BookingStatus = "PICKED"
	StatusCompleted   BookingStatus = "COMPLETED"
	StatusCancelled   BookingStatus = "CANCELLED"
	StatusRescheduled BookingStatus = "RESCHEDULED"
)

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPicked,
		StatusCompleted, StatusCancelled, StatusRescheduled:
		return true
	}
	return false
}

// Booking is a customer pickup request. Created once per submission;
// status and final price are mutated later by the back office, never deleted.
type Booking struct {
	ID                string        `gorm:"primaryKey;size:36"`
	ReferenceCode     string        `gorm:"uniqueIndex;size:16;not null"`
	CustomerName      string        `gorm:"size:64;not null"`
	ContactNumber     string        `gorm:"size:16;not null"`
	Email             *string       `gorm:"size:256"`
	Address           string        `gorm:"size:256;not null"`
	Pincode           string        `gorm:"size:8;not null"`
	CityID            string        `gorm:"index;size:36;not null"`
	ModelID           string        `gorm:"index;size:36;not null"`
	VariantID         *string       `gorm:"size:36"`
	ConditionID       string        `gorm:"size:36;not null"`
	EstimatedPrice    int64         `gorm:"not null"`
	FinalPrice        *int64
	Status            BookingStatus `gorm:"size:16;not null;default:PENDING"`
	PickupDate        time.Time     `gorm:"not null"`
	PreferredTimeSlot string        `gorm:"size:64;not null"`
	Notes             *string       `gorm:"size:512"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Associations
	City      City      `gorm:"constraint:OnDelete:RESTRICT"`
	Model     Model     `gorm:"constraint:OnDelete:RESTRICT"`
	Variant   *Variant
	Condition Condition `gorm:"constraint:OnDelete:RESTRICT"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}
