package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"indohomz-server/models"
	"indohomz-server/schemas"
	"indohomz-server/utils"
)

var ErrEmailTaken = errors.New("a user with this email already exists")

// RegisterUser creates a tenant account from a validated payload.
func RegisterUser(db *gorm.DB, input schemas.UserCreate) (*models.User, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{
		Email:         email,
		PasswordHash:  string(hash),
		Role:          models.UserRoleTenant,
		PhoneNumber:   utils.NormalizePhoneNumber(input.PhoneNumber),
		IsKYCVerified: input.IsKYCVerified,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user together with their bookings and reviews.
func DeleteUser(db *gorm.DB, userID uint) error {
	return db.Select(clause.Associations).Delete(&models.User{Model: gorm.Model{ID: userID}}).Error
}
