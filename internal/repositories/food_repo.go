package repositories

import (
	"carekitchen/internal/models"
)

// FoodRepository defines the interface for food item data access.
type FoodRepository interface {
	GetAllAvailable() ([]models.FoodItem, error)
	GetByID(id uint) (*models.FoodItem, error)
	Create(item *models.FoodItem) error
	Update(item *models.FoodItem) error
	Delete(id uint) error
	Search(foodType, location string) ([]models.FoodItem, error)
	// Reserve atomically claims an available item, flipping it to
	// unavailable. Returns false when the item was already claimed or
	// does not exist.
	Reserve(id uint) (bool, error)
	CountUnavailable() (int64, error)
}
