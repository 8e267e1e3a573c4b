package repositories

import (
	"fmt"

	"carekitchen/internal/models"

	"gorm.io/gorm"
)

// HistoryRepository defines the interface for the append-only donation and
// request history records. Rows are never mutated or deleted.
type HistoryRepository interface {
	CreateDonation(h *models.DonationHistory) error
	CreateRequest(h *models.RequestHistory) error
	DonationsByUser(userID uint) ([]models.DonationHistory, error)
	RequestsByUser(userID uint) ([]models.RequestHistory, error)
}

// GORMHistoryRepository is a GORM implementation of HistoryRepository.
type GORMHistoryRepository struct {
	db *gorm.DB
}

// NewGORMHistoryRepository creates a new instance of GORMHistoryRepository.
func NewGORMHistoryRepository(db *gorm.DB) *GORMHistoryRepository {
	return &GORMHistoryRepository{
		db: db,
	}
}

// CreateDonation appends a donation history record.
func (r *GORMHistoryRepository) CreateDonation(h *models.DonationHistory) error {
	if err := r.db.Create(h).Error; err != nil {
		return fmt.Errorf("failed to create donation history: %w", err)
	}
	return nil
}

// CreateRequest appends a request history record.
func (r *GORMHistoryRepository) CreateRequest(h *models.RequestHistory) error {
	if err := r.db.Create(h).Error; err != nil {
		return fmt.Errorf("failed to create request history: %w", err)
	}
	return nil
}

// DonationsByUser lists a user's donation history.
func (r *GORMHistoryRepository) DonationsByUser(userID uint) ([]models.DonationHistory, error) {
	var donations []models.DonationHistory
	if err := r.db.Where("user_id = ?", userID).Find(&donations).Error; err != nil {
		return nil, fmt.Errorf("failed to list donation history for user %d: %w", userID, err)
	}
	return donations, nil
}

// RequestsByUser lists a user's request history.
func (r *GORMHistoryRepository) RequestsByUser(userID uint) ([]models.RequestHistory, error) {
	var requests []models.RequestHistory
	if err := r.db.Where("user_id = ?", userID).Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to list request history for user %d: %w", userID, err)
	}
	return requests, nil
}
