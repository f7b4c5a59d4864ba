package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
)

// QualifyingBookingStatuses are the statuses that entitle a user to review
// the booked property.
var QualifyingBookingStatuses = []BookingStatus{BookingStatusActive, BookingStatusCompleted}

type Booking struct {
	gorm.Model
	UserID      uint          `json:"userID" gorm:"not null;index"`
	PropertyID  uint          `json:"propertyID" gorm:"not null;index"`
	Status      BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"` // pending, confirmed, active, completed
	CheckInDate *time.Time    `json:"checkInDate"`

	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// BeforeCreate blocks the insert when the target property is marked as fully
// occupied. The check runs inside the same transaction as the insert, so a
// rejected booking leaves no trace. On postgres the property row is read
// under FOR UPDATE, serializing concurrent booking inserts for one property.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = BookingStatusPending
	}

	q := tx.Model(&Property{}).Where("id = ?", b.PropertyID)
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	// A missing property is left to the foreign key to reject.
	var full bool
	if err := q.Select("is_occupancy_full").Limit(1).Scan(&full).Error; err != nil {
		return err
	}
	if full {
		return &ConstraintViolation{Constraint: "booking_property_full", Err: ErrPropertyFull}
	}
	return nil
}
