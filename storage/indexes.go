package storage

import "gorm.io/gorm"

// performanceIndexes complement the indexes GORM derives from model tags.
// The composite booking index covers the review guard's existence probe.
var performanceIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_properties_location_area ON properties(location_area)",
	"CREATE INDEX IF NOT EXISTS idx_properties_is_occupancy_full ON properties(is_occupancy_full)",
	"CREATE INDEX IF NOT EXISTS idx_properties_created_at ON properties(created_at)",
	"CREATE INDEX IF NOT EXISTS idx_bookings_property_id ON bookings(property_id)",
	"CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status)",
	"CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings(created_at)",
	"CREATE INDEX IF NOT EXISTS idx_bookings_user_property_status ON bookings(user_id, property_id, status)",
	"CREATE INDEX IF NOT EXISTS idx_reviews_property_id ON reviews(property_id)",
	"CREATE INDEX IF NOT EXISTS idx_reviews_user_id ON reviews(user_id)",
}

func CreateIndexes(db *gorm.DB) error {
	for _, stmt := range performanceIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
