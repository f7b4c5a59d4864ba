package services

import (
	"gorm.io/gorm"

	"indohomz-server/models"
	"indohomz-server/schemas"
)

// CreateBooking validates the payload and submits the booking for
// persistence. The occupancy guard runs inside the insert transaction; a
// rejected booking is rolled back whole.
func CreateBooking(db *gorm.DB, userID uint, input schemas.BookingCreate) (*models.Booking, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	booking := models.Booking{
		UserID:      userID,
		PropertyID:  input.PropertyID,
		CheckInDate: input.CheckInDate,
	}
	if err := db.Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func ListUserBookings(db *gorm.DB, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func ListPropertyBookings(db *gorm.DB, propertyID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.Where("property_id = ?", propertyID).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

// UpdateBookingStatus sets a booking's status. Transition order is
// deliberately not validated here; the review guard only reads the current
// value.
func UpdateBookingStatus(db *gorm.DB, bookingID uint, status models.BookingStatus) error {
	res := db.Model(&models.Booking{}).Where("id = ?", bookingID).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
