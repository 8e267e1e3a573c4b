package repositories

import (
	"errors"
	"fmt"

	"carekitchen/internal/domain"
	"carekitchen/internal/models"

	"gorm.io/gorm"
)

// GORMFoodRepository is a GORM implementation of FoodRepository.
type GORMFoodRepository struct {
	db *gorm.DB
}

// NewGORMFoodRepository creates a new instance of GORMFoodRepository.
func NewGORMFoodRepository(db *gorm.DB) *GORMFoodRepository {
	return &GORMFoodRepository{
		db: db,
	}
}

// GetAllAvailable retrieves every food item still marked available.
func (r *GORMFoodRepository) GetAllAvailable() ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := r.db.Where("available = ?", true).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list available food items: %w", err)
	}
	return items, nil
}

// GetByID retrieves a single food item by its ID.
func (r *GORMFoodRepository) GetByID(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get food item by ID %d: %w", id, err)
	}
	return &item, nil
}

// Create inserts a new food item.
func (r *GORMFoodRepository) Create(item *models.FoodItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create food item: %w", err)
	}
	return nil
}

// Update saves the full food item row.
func (r *GORMFoodRepository) Update(item *models.FoodItem) error {
	res := r.db.Save(item)
	if res.Error != nil {
		return fmt.Errorf("failed to update food item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a food item row. History rows referencing it are left
// untouched (soft references).
func (r *GORMFoodRepository) Delete(id uint) error {
	res := r.db.Delete(&models.FoodItem{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete food item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search filters available items by exact, case-sensitive type and location.
func (r *GORMFoodRepository) Search(foodType, location string) ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := r.db.
		Where("food_type = ? AND location = ? AND available = ?", foodType, location, true).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search food items: %w", err)
	}
	return items, nil
}

// Reserve claims an available item with a single conditional update, so two
// concurrent requests cannot both win.
func (r *GORMFoodRepository) Reserve(id uint) (bool, error) {
	res := r.db.Model(&models.FoodItem{}).
		Where("id = ? AND available = ?", id, true).
		Update("available", false)
	if res.Error != nil {
		return false, fmt.Errorf("failed to reserve food item %d: %w", id, res.Error)
	}
	return res.RowsAffected == 1, nil
}

// CountUnavailable counts items that have been donated (availability flag off).
func (r *GORMFoodRepository) CountUnavailable() (int64, error) {
	var count int64
	if err := r.db.Model(&models.FoodItem{}).Where("available = ?", false).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count donated food items: %w", err)
	}
	return count, nil
}
