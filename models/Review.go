package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Review struct {
	gorm.Model
	PropertyID uint   `json:"propertyID" gorm:"not null;index"`
	UserID     uint   `json:"userID" gorm:"not null;index"`
	Rating     int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string `json:"comment" gorm:"type:text"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// BeforeCreate blocks the insert unless the reviewing user holds an active or
// completed booking for the property. The existence probe runs inside the
// insert transaction; on postgres the matching booking row is read under
// FOR SHARE so it cannot be deleted out from under the check.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	q := tx.Model(&Booking{}).
		Where("user_id = ? AND property_id = ?", r.UserID, r.PropertyID).
		Where("status IN ?", QualifyingBookingStatuses)
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "SHARE"})
	}

	var bookingID uint
	if err := q.Select("id").Limit(1).Scan(&bookingID).Error; err != nil {
		return err
	}
	if bookingID == 0 {
		return &ConstraintViolation{Constraint: "review_requires_booking", Err: ErrNoQualifyingBooking}
	}
	return nil
}
