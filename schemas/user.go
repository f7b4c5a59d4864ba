package schemas

import (
	"time"

	"indohomz-server/models"
)

type UserCreate struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	PhoneNumber   string `json:"phoneNumber" validate:"omitempty,max=50"`
	IsKYCVerified bool   `json:"isKYCVerified"`
}

type UserOut struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	PhoneNumber   string    `json:"phoneNumber,omitempty"`
	IsKYCVerified bool      `json:"isKYCVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewUserOut(u *models.User) UserOut {
	return UserOut{
		ID:            u.ID,
		Email:         u.Email,
		Role:          u.Role,
		PhoneNumber:   u.PhoneNumber,
		IsKYCVerified: u.IsKYCVerified,
		CreatedAt:     u.CreatedAt,
	}
}
