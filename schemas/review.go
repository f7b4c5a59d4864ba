package schemas

import (
	"time"

	"indohomz-server/models"
)

type ReviewCreate struct {
	PropertyID uint   `json:"propertyID" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"omitempty,max=1000"`
}

type ReviewOut struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"userID"`
	PropertyID uint      `json:"propertyID"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewReviewOut(r *models.Review) ReviewOut {
	return ReviewOut{
		ID:         r.ID,
		UserID:     r.UserID,
		PropertyID: r.PropertyID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}
