package services

import (
	"errors"

	"gorm.io/gorm"

	"indohomz-server/models"
	"indohomz-server/schemas"
)

var ErrAlreadyReviewed = errors.New("user has already reviewed this property")

// PropertyReviews is the review listing for one property.
type PropertyReviews struct {
	Reviews       []schemas.ReviewOut `json:"reviews"`
	AverageRating float64             `json:"averageRating"`
	ReviewCount   int                 `json:"reviewCount"`
}

// CreateReview validates the payload, refuses duplicates, and submits the
// review for persistence. The qualifying-booking guard runs inside the
// insert transaction.
func CreateReview(db *gorm.DB, userID uint, input schemas.ReviewCreate) (*models.Review, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	var existing models.Review
	err := db.Where("property_id = ? AND user_id = ?", input.PropertyID, userID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyReviewed
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := models.Review{
		UserID:     userID,
		PropertyID: input.PropertyID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// ListPropertyReviews returns reviews newest-first with the average rating.
func ListPropertyReviews(db *gorm.DB, propertyID uint) (*PropertyReviews, error) {
	var reviews []models.Review
	if err := db.Where("property_id = ?", propertyID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}

	result := PropertyReviews{Reviews: make([]schemas.ReviewOut, 0, len(reviews))}
	var totalStars float64
	for i := range reviews {
		result.Reviews = append(result.Reviews, schemas.NewReviewOut(&reviews[i]))
		totalStars += float64(reviews[i].Rating)
	}
	result.ReviewCount = len(reviews)
	if result.ReviewCount > 0 {
		result.AverageRating = totalStars / float64(result.ReviewCount)
	}
	return &result, nil
}

// GetUserPropertyReview fetches the review a user left on a property.
func GetUserPropertyReview(db *gorm.DB, userID, propertyID uint) (*models.Review, error) {
	var review models.Review
	if err := db.Where("property_id = ? AND user_id = ?", propertyID, userID).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}
