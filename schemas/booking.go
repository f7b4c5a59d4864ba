package schemas

import (
	"time"

	"indohomz-server/models"
)

type BookingCreate struct {
	PropertyID  uint       `json:"propertyID" validate:"required"`
	CheckInDate *time.Time `json:"checkInDate"`
}

type BookingOut struct {
	ID          uint                 `json:"id"`
	UserID      uint                 `json:"userID"`
	PropertyID  uint                 `json:"propertyID"`
	Status      models.BookingStatus `json:"status"`
	CheckInDate *time.Time           `json:"checkInDate,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

func NewBookingOut(b *models.Booking) BookingOut {
	return BookingOut{
		ID:          b.ID,
		UserID:      b.UserID,
		PropertyID:  b.PropertyID,
		Status:      b.Status,
		CheckInDate: b.CheckInDate,
		CreatedAt:   b.CreatedAt,
	}
}
