package services

import (
	"gorm.io/gorm"

	"indohomz-server/models"
	"indohomz-server/schemas"
)

// UpsertAmenity creates an amenity by name or updates its icon.
func UpsertAmenity(db *gorm.DB, input schemas.AmenityIn) (*models.Amenity, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	var amenity models.Amenity
	err := db.Where(models.Amenity{Name: input.Name}).
		Assign(models.Amenity{IconName: input.IconName}).
		FirstOrCreate(&amenity).Error
	if err != nil {
		return nil, err
	}
	return &amenity, nil
}

func ListAmenities(db *gorm.DB) ([]models.Amenity, error) {
	var amenities []models.Amenity
	err := db.Order("name ASC").Find(&amenities).Error
	return amenities, err
}
