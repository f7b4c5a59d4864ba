package schemas

import (
	"time"

	"indohomz-server/models"
	"indohomz-server/utils"
)

type PropertyCreate struct {
	Title           string   `json:"title" validate:"required,max=255"`
	LocationArea    string   `json:"locationArea" validate:"omitempty,max=255"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	Deposit         *float64 `json:"deposit" validate:"omitempty,gte=0"`
	GenderType      string   `json:"genderType" validate:"omitempty,oneof=male female any"`
	IsOccupancyFull bool     `json:"isOccupancyFull"`
	VideoURL        string   `json:"videoURL" validate:"omitempty,url,max=1024"`
	Images          []string `json:"images" validate:"omitempty,dive,url"`
	AmenityIDs      []uint   `json:"amenityIDs"`
}

type PropertyOut struct {
	ID              uint         `json:"id"`
	Title           string       `json:"title"`
	LocationArea    string       `json:"locationArea,omitempty"`
	Price           float64      `json:"price"`
	Deposit         *float64     `json:"deposit,omitempty"`
	GenderType      string       `json:"genderType,omitempty"`
	IsOccupancyFull bool         `json:"isOccupancyFull"`
	VideoURL        string       `json:"videoURL,omitempty"`
	Images          []string     `json:"images"`
	Amenities       []AmenityOut `json:"amenities,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
}

func NewPropertyOut(p *models.Property) PropertyOut {
	out := PropertyOut{
		ID:              p.ID,
		Title:           p.Title,
		LocationArea:    p.LocationArea,
		Price:           p.Price,
		Deposit:         p.Deposit,
		GenderType:      p.GenderType,
		IsOccupancyFull: p.IsOccupancyFull,
		VideoURL:        p.VideoURL,
		Images:          utils.ExtractImageURLs(p.Images),
		CreatedAt:       p.CreatedAt,
	}
	for i := range p.Amenities {
		out.Amenities = append(out.Amenities, NewAmenityOut(&p.Amenities[i]))
	}
	return out
}
