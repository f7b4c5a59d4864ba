package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"indohomz-server/models"
	"indohomz-server/schemas"
	"indohomz-server/storage"
)

const propertyCachePrefix = "properties"

// CreateProperty persists a property and its amenity associations. A non-nil
// cache is invalidated after the write.
func CreateProperty(db *gorm.DB, cache *storage.CacheService, input schemas.PropertyCreate) (*models.Property, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	var amenities []models.Amenity
	if len(input.AmenityIDs) > 0 {
		if err := db.Find(&amenities, input.AmenityIDs).Error; err != nil {
			return nil, err
		}
		if len(amenities) != len(input.AmenityIDs) {
			return nil, fmt.Errorf("unknown amenity id: %w", gorm.ErrRecordNotFound)
		}
	}

	property := models.Property{
		Title:           input.Title,
		LocationArea:    input.LocationArea,
		Price:           input.Price,
		Deposit:         input.Deposit,
		GenderType:      input.GenderType,
		IsOccupancyFull: input.IsOccupancyFull,
		VideoURL:        input.VideoURL,
		Amenities:       amenities,
	}
	if len(input.Images) > 0 {
		raw, err := json.Marshal(input.Images)
		if err != nil {
			return nil, err
		}
		property.Images = datatypes.JSON(raw)
	}

	if err := db.Create(&property).Error; err != nil {
		return nil, err
	}

	invalidateProperties(cache)
	return &property, nil
}

// GetProperty loads a property with its amenities, read-through cached.
func GetProperty(db *gorm.DB, cache *storage.CacheService, propertyID uint) (*schemas.PropertyOut, error) {
	key := storage.CacheKey(propertyCachePrefix, "id", strconv.FormatUint(uint64(propertyID), 10))

	var out schemas.PropertyOut
	if cache != nil && cache.Get(context.Background(), key, &out) {
		return &out, nil
	}

	var property models.Property
	if err := db.Preload("Amenities").First(&property, propertyID).Error; err != nil {
		return nil, err
	}

	out = schemas.NewPropertyOut(&property)
	if cache != nil {
		cache.Set(context.Background(), key, out, storage.DefaultCacheTTL)
	}
	return &out, nil
}

// ListProperties returns properties, optionally filtered by location area,
// read-through cached per area.
func ListProperties(db *gorm.DB, cache *storage.CacheService, area string) ([]schemas.PropertyOut, error) {
	key := storage.CacheKey(propertyCachePrefix, "area", area)

	var outs []schemas.PropertyOut
	if cache != nil && cache.Get(context.Background(), key, &outs) {
		return outs, nil
	}

	q := db.Preload("Amenities").Order("created_at DESC")
	if area != "" {
		q = q.Where("location_area = ?", area)
	}
	var properties []models.Property
	if err := q.Find(&properties).Error; err != nil {
		return nil, err
	}

	outs = make([]schemas.PropertyOut, 0, len(properties))
	for i := range properties {
		outs = append(outs, schemas.NewPropertyOut(&properties[i]))
	}
	if cache != nil {
		cache.Set(context.Background(), key, outs, storage.DefaultCacheTTL)
	}
	return outs, nil
}

// SetOccupancyFull flips the occupancy flag that the booking guard reads.
func SetOccupancyFull(db *gorm.DB, cache *storage.CacheService, propertyID uint, full bool) error {
	res := db.Model(&models.Property{}).Where("id = ?", propertyID).Update("is_occupancy_full", full)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	invalidateProperties(cache)
	return nil
}

// DeleteProperty removes a property with its bookings, reviews and amenity
// associations.
func DeleteProperty(db *gorm.DB, cache *storage.CacheService, propertyID uint) error {
	err := db.Select(clause.Associations).Delete(&models.Property{Model: gorm.Model{ID: propertyID}}).Error
	if err != nil {
		return err
	}
	invalidateProperties(cache)
	return nil
}

func invalidateProperties(cache *storage.CacheService) {
	if cache != nil {
		cache.DeletePrefix(context.Background(), propertyCachePrefix)
	}
}
