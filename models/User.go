package models

import "gorm.io/gorm"

const (
	UserRoleTenant = "tenant"
	UserRoleAdmin  = "admin"
)

type User struct {
	gorm.Model
	Email         string `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash  string `json:"-" gorm:"type:varchar(255);not null"`
	Role          string `json:"role" gorm:"type:varchar(20);not null;default:'tenant';index"` // tenant, admin
	PhoneNumber   string `json:"phoneNumber" gorm:"type:varchar(50)"`
	IsKYCVerified bool   `json:"isKYCVerified" gorm:"not null;default:false"`

	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
