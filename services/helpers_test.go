package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"indohomz-server/models"
	"indohomz-server/schemas"
	"indohomz-server/storage"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, storage.RunMigrations(db))
	return db
}

func registerTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user, err := RegisterUser(db, schemas.UserCreate{Email: email, Password: "secret-password"})
	require.NoError(t, err)
	return user
}

func createTestProperty(t *testing.T, db *gorm.DB, title string, full bool) *models.Property {
	t.Helper()
	property, err := CreateProperty(db, nil, schemas.PropertyCreate{
		Title:           title,
		Price:           100.0,
		IsOccupancyFull: full,
	})
	require.NoError(t, err)
	return property
}

func countTestRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
