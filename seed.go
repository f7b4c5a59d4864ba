package main

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"indohomz-server/models"
	"indohomz-server/schemas"
	"indohomz-server/services"
	"indohomz-server/storage"
)

// runSeed walks demo data through the service layer so every write passes
// the same validation and guards as production traffic.
func runSeed(db *gorm.DB, cache *storage.CacheService) error {
	amenityIDs := make([]uint, 0, 3)
	for _, a := range []schemas.AmenityIn{
		{Name: "WiFi", IconName: "wifi"},
		{Name: "Parking", IconName: "car"},
		{Name: "Laundry", IconName: "washer"},
	} {
		amenity, err := services.UpsertAmenity(db, a)
		if err != nil {
			return err
		}
		amenityIDs = append(amenityIDs, amenity.ID)
	}

	tenant, err := services.RegisterUser(db, schemas.UserCreate{
		Email:    "tenant@indohomz.test",
		Password: "changeme123",
	})
	if errors.Is(err, services.ErrEmailTaken) {
		tenant, err = services.GetUserByEmail(db, "tenant@indohomz.test")
	}
	if err != nil {
		return err
	}

	deposit := 150.0
	property, err := services.CreateProperty(db, cache, schemas.PropertyCreate{
		Title:        "Kos Melati Room C",
		LocationArea: "Depok",
		Price:        120.0,
		Deposit:      &deposit,
		GenderType:   "any",
		AmenityIDs:   amenityIDs,
	})
	if err != nil {
		return err
	}

	checkIn := time.Now().AddDate(0, -2, 0)
	booking, err := services.CreateBooking(db, tenant.ID, schemas.BookingCreate{
		PropertyID:  property.ID,
		CheckInDate: &checkIn,
	})
	if err != nil {
		return err
	}
	if err := services.UpdateBookingStatus(db, booking.ID, models.BookingStatusCompleted); err != nil {
		return err
	}

	if _, err := services.CreateReview(db, tenant.ID, schemas.ReviewCreate{
		PropertyID: property.ID,
		Rating:     5,
		Comment:    "Clean room, responsive owner.",
	}); err != nil && !errors.Is(err, services.ErrAlreadyReviewed) {
		return err
	}

	log.Info().
		Uint("tenant", tenant.ID).
		Uint("property", property.ID).
		Uint("booking", booking.ID).
		Msg("✅ seed data in place")
	return nil
}
