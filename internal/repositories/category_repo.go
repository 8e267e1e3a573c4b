package repositories

import (
	"errors"
	"fmt"

	"carekitchen/internal/domain"
	"carekitchen/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository defines the interface for food category reference data.
type CategoryRepository interface {
	GetAll() ([]models.FoodCategory, error)
	GetByID(id uint) (*models.FoodCategory, error)
	FirstOrCreate(name string) (*models.FoodCategory, error)
}

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// GetAll lists every category.
func (r *GORMCategoryRepository) GetAll() ([]models.FoodCategory, error) {
	var categories []models.FoodCategory
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list food categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a category by its ID.
func (r *GORMCategoryRepository) GetByID(id uint) (*models.FoodCategory, error) {
	var category models.FoodCategory
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get food category by ID %d: %w", id, err)
	}
	return &category, nil
}

// FirstOrCreate returns the category with the given name, inserting it if
// absent. The unique index on name keeps concurrent seeding consistent.
func (r *GORMCategoryRepository) FirstOrCreate(name string) (*models.FoodCategory, error) {
	var category models.FoodCategory
	if err := r.db.Where(models.FoodCategory{Name: name}).FirstOrCreate(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to get or create food category %s: %w", name, err)
	}
	return &category, nil
}
