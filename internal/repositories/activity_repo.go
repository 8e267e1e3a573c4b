package repositories

import (
	"fmt"

	"carekitchen/internal/models"

	"gorm.io/gorm"
)

// ActivityRepository defines the interface for the append-only audit trail.
type ActivityRepository interface {
	Create(a *models.UserActivity) error
	GetByUser(userID uint) ([]models.UserActivity, error)
}

// FeedbackRepository defines the interface for append-only user feedback.
type FeedbackRepository interface {
	Create(f *models.Feedback) error
}

// GORMActivityRepository is a GORM implementation of ActivityRepository.
type GORMActivityRepository struct {
	db *gorm.DB
}

// NewGORMActivityRepository creates a new instance of GORMActivityRepository.
func NewGORMActivityRepository(db *gorm.DB) *GORMActivityRepository {
	return &GORMActivityRepository{
		db: db,
	}
}

// Create appends an activity record.
func (r *GORMActivityRepository) Create(a *models.UserActivity) error {
	if err := r.db.Create(a).Error; err != nil {
		return fmt.Errorf("failed to create user activity: %w", err)
	}
	return nil
}

// GetByUser lists a user's activity log.
func (r *GORMActivityRepository) GetByUser(userID uint) ([]models.UserActivity, error) {
	var activities []models.UserActivity
	if err := r.db.Where("user_id = ?", userID).Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("failed to list activity for user %d: %w", userID, err)
	}
	return activities, nil
}

// GORMFeedbackRepository is a GORM implementation of FeedbackRepository.
type GORMFeedbackRepository struct {
	db *gorm.DB
}

// NewGORMFeedbackRepository creates a new instance of GORMFeedbackRepository.
func NewGORMFeedbackRepository(db *gorm.DB) *GORMFeedbackRepository {
	return &GORMFeedbackRepository{
		db: db,
	}
}

// Create appends a feedback record.
func (r *GORMFeedbackRepository) Create(f *models.Feedback) error {
	if err := r.db.Create(f).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}
