package storage

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"indohomz-server/models"
)

// Migration is a single schema change, applied at most once, in order.
type Migration struct {
	ID  string
	Run func(db *gorm.DB) error
}

// SchemaMigration records an applied migration.
type SchemaMigration struct {
	ID        string `gorm:"primaryKey;type:varchar(255)"`
	AppliedAt time.Time
}

func (SchemaMigration) TableName() string { return "schema_migrations" }

// Migrations returns the ordered list of schema changes.
func Migrations() []Migration {
	return []Migration{
		{ID: "001_initial_schema", Run: migrateInitialSchema},
		{ID: "002_add_indexes", Run: CreateIndexes},
	}
}

func migrateInitialSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Amenity{},
		&models.Property{},
		&models.Booking{},
		&models.Review{},
	)
}

// RunMigrations applies all pending migrations in order. Already-applied
// migrations are skipped, so repeated runs are safe.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("migration table: %w", err)
	}

	for _, m := range Migrations() {
		var applied int64
		if err := db.Model(&SchemaMigration{}).Where("id = ?", m.ID).Count(&applied).Error; err != nil {
			return err
		}
		if applied > 0 {
			continue
		}

		if err := m.Run(db); err != nil {
			return fmt.Errorf("migration %s: %w", m.ID, err)
		}
		if err := db.Create(&SchemaMigration{ID: m.ID, AppliedAt: time.Now().UTC()}).Error; err != nil {
			return fmt.Errorf("recording migration %s: %w", m.ID, err)
		}
		log.Info().Str("migration", m.ID).Msg("applied")
	}
	return nil
}
