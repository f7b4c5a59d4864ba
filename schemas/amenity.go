package schemas

import "indohomz-server/models"

type AmenityIn struct {
	Name     string `json:"name" validate:"required,max=255"`
	IconName string `json:"iconName" validate:"omitempty,max=255"`
}

type AmenityOut struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	IconName string `json:"iconName,omitempty"`
}

func NewAmenityOut(a *models.Amenity) AmenityOut {
	return AmenityOut{ID: a.ID, Name: a.Name, IconName: a.IconName}
}
