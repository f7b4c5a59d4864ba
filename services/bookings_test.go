package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"indohomz-server/models"
	"indohomz-server/schemas"
)

func TestCreateBooking(t *testing.T) {
	db := setupTestDB(t)
	user := registerTestUser(t, db, "guest@example.com")
	property := createTestProperty(t, db, "Open Room", false)

	checkIn := time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC)
	booking, err := CreateBooking(db, user.ID, schemas.BookingCreate{
		PropertyID:  property.ID,
		CheckInDate: &checkIn,
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, user.ID, booking.UserID)
	require.NotNil(t, booking.CheckInDate)
	assert.True(t, checkIn.Equal(*booking.CheckInDate))
}

func TestCreateBookingRejectedWhenFull(t *testing.T) {
	db := setupTestDB(t)
	user := registerTestUser(t, db, "late@example.com")
	property := createTestProperty(t, db, "Full House", true)

	_, err := CreateBooking(db, user.ID, schemas.BookingCreate{PropertyID: property.ID})
	require.Error(t, err)
	assert.True(t, models.IsConstraintViolation(err))
	assert.ErrorIs(t, err, models.ErrPropertyFull)
	assert.EqualValues(t, 0, countTestRows(t, db, &models.Booking{}))

	// Same input, same outcome.
	_, err = CreateBooking(db, user.ID, schemas.BookingCreate{PropertyID: property.ID})
	assert.ErrorIs(t, err, models.ErrPropertyFull)
	assert.EqualValues(t, 0, countTestRows(t, db, &models.Booking{}))
}

func TestCreateBookingAfterOccupancyFlips(t *testing.T) {
	db := setupTestDB(t)
	user := registerTestUser(t, db, "flip@example.com")
	property := createTestProperty(t, db, "Flip Room", false)

	_, err := CreateBooking(db, user.ID, schemas.BookingCreate{PropertyID: property.ID})
	require.NoError(t, err)

	require.NoError(t, SetOccupancyFull(db, nil, property.ID, true))
	_, err = CreateBooking(db, user.ID, schemas.BookingCreate{PropertyID: property.ID})
	assert.ErrorIs(t, err, models.ErrPropertyFull)

	require.NoError(t, SetOccupancyFull(db, nil, property.ID, false))
	_, err = CreateBooking(db, user.ID, schemas.BookingCreate{PropertyID: property.ID})
	assert.NoError(t, err)
}

func TestCreateBookingValidation(t *testing.T) {
	db := setupTestDB(t)
	user := registerTestUser(t, db, "val@example.com")

	_, err := CreateBooking(db, user.ID, schemas.BookingCreate{})
	assert.True(t, schemas.IsValidationError(err))
}

func TestListBookings(t *testing.T) {
	db := setupTestDB(t)
	user := registerTestUser(t, db, "list@example.com")
	first := createTestProperty(t, db, "Room 1", false)
	second := createTestProperty(t, db, "Room 2", false)

	_, err := CreateBooking(db, user.ID, schemas.BookingCreate{PropertyID: first.ID})
	require.NoError(t, err)
	_, err = CreateBooking(db, user.ID, schemas.BookingCreate{PropertyID: second.ID})
	require.NoError(t, err)

	byUser, err := ListUserBookings(db, user.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byProperty, err := ListPropertyBookings(db, first.ID)
	require.NoError(t, err)
	assert.Len(t, byProperty, 1)
}

func TestUpdateBookingStatus(t *testing.T) {
	db := setupTestDB(t)
	user := registerTestUser(t, db, "status@example.com")
	property := createTestProperty(t, db, "Status Room", false)

	booking, err := CreateBooking(db, user.ID, schemas.BookingCreate{PropertyID: property.ID})
	require.NoError(t, err)

	require.NoError(t, UpdateBookingStatus(db, booking.ID, models.BookingStatusActive))

	var reloaded models.Booking
	require.NoError(t, db.First(&reloaded, booking.ID).Error)
	assert.Equal(t, models.BookingStatusActive, reloaded.Status)

	err = UpdateBookingStatus(db, 9999, models.BookingStatusActive)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
