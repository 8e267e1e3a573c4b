package repositories

import (
	"fmt"

	"carekitchen/internal/models"

	"gorm.io/gorm"
)

// RatingRepository defines the interface for rating and review records.
// Ratings are created once and never mutated.
type RatingRepository interface {
	Create(rating *models.RatingReview) error
	Exists(ratedByUserID, ratedUserID uint, foodItemID *uint) (bool, error)
	GetForUser(ratedUserID uint) ([]models.RatingReview, error)
}

// GORMRatingRepository is a GORM implementation of RatingRepository.
type GORMRatingRepository struct {
	db *gorm.DB
}

// NewGORMRatingRepository creates a new instance of GORMRatingRepository.
func NewGORMRatingRepository(db *gorm.DB) *GORMRatingRepository {
	return &GORMRatingRepository{
		db: db,
	}
}

// Create appends a rating record.
func (r *GORMRatingRepository) Create(rating *models.RatingReview) error {
	if err := r.db.Create(rating).Error; err != nil {
		return fmt.Errorf("failed to create rating: %w", err)
	}
	return nil
}

// Exists reports whether the rater has already rated this user for this
// item (a nil item matches item-less ratings only).
func (r *GORMRatingRepository) Exists(ratedByUserID, ratedUserID uint, foodItemID *uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.RatingReview{}).
		Where("rated_by_user_id = ? AND rated_user_id = ?", ratedByUserID, ratedUserID)
	if foodItemID != nil {
		query = query.Where("food_item_id = ?", *foodItemID)
	} else {
		query = query.Where("food_item_id IS NULL")
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check existing rating: %w", err)
	}
	return count > 0, nil
}

// GetForUser lists ratings received by a user.
func (r *GORMRatingRepository) GetForUser(ratedUserID uint) ([]models.RatingReview, error) {
	var ratings []models.RatingReview
	if err := r.db.Where("rated_user_id = ?", ratedUserID).Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("failed to list ratings for user %d: %w", ratedUserID, err)
	}
	return ratings, nil
}
