package repositories

import (
	"errors"
	"fmt"

	"carekitchen/internal/domain"
	"carekitchen/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository defines the interface for user notifications.
type NotificationRepository interface {
	Create(n *models.Notification) error
	GetByID(id uint) (*models.Notification, error)
	GetByUser(userID uint) ([]models.Notification, error)
	MarkRead(id uint) error
}

// GORMNotificationRepository is a GORM implementation of NotificationRepository.
type GORMNotificationRepository struct {
	db *gorm.DB
}

// NewGORMNotificationRepository creates a new instance of GORMNotificationRepository.
func NewGORMNotificationRepository(db *gorm.DB) *GORMNotificationRepository {
	return &GORMNotificationRepository{
		db: db,
	}
}

// Create appends a notification.
func (r *GORMNotificationRepository) Create(n *models.Notification) error {
	if err := r.db.Create(n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// GetByID retrieves a notification by its ID.
func (r *GORMNotificationRepository) GetByID(id uint) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get notification by ID %d: %w", id, err)
	}
	return &n, nil
}

// GetByUser lists a user's notifications.
func (r *GORMNotificationRepository) GetByUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := r.db.Where("user_id = ?", userID).Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications for user %d: %w", userID, err)
	}
	return notifications, nil
}

// MarkRead flips the read flag, the only mutation notifications allow.
func (r *GORMNotificationRepository) MarkRead(id uint) error {
	res := r.db.Model(&models.Notification{}).Where("id = ?", id).Update("read", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark notification %d read: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
