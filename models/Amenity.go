package models

import "gorm.io/gorm"

type Amenity struct {
	gorm.Model
	Name     string `json:"name" gorm:"type:varchar(255);not null;uniqueIndex"`
	IconName string `json:"iconName" gorm:"type:varchar(255)"`

	Properties []Property `json:"properties,omitempty" gorm:"many2many:property_amenities"`
}
