package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Property struct {
	gorm.Model
	Title           string         `json:"title" gorm:"type:varchar(255);not null"`
	LocationArea    string         `json:"locationArea" gorm:"type:varchar(255);index"`
	Price           float64        `json:"price" gorm:"not null"`
	Deposit         *float64       `json:"deposit"`
	GenderType      string         `json:"genderType" gorm:"type:varchar(50)"` // male, female, any
	IsOccupancyFull bool           `json:"isOccupancyFull" gorm:"not null;default:false;index"`
	VideoURL        string         `json:"videoURL" gorm:"type:varchar(1024)"`
	Images          datatypes.JSON `json:"images"` // JSON array of URLs

	Amenities []Amenity `json:"amenities,omitempty" gorm:"many2many:property_amenities;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Bookings  []Booking `json:"bookings,omitempty" gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Reviews   []Review  `json:"reviews,omitempty" gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
