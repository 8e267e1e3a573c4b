package repositories

import (
	"sync"

	"carekitchen/internal/domain"
	"carekitchen/internal/models"
)

// MockFoodRepository is an in-memory implementation of FoodRepository.
type MockFoodRepository struct {
	items  map[uint]models.FoodItem
	nextID uint
	mu     sync.RWMutex
}

// NewMockFoodRepository creates a new instance of MockFoodRepository.
func NewMockFoodRepository() *MockFoodRepository {
	return &MockFoodRepository{
		items:  make(map[uint]models.FoodItem),
		nextID: 1,
	}
}

// GetAllAvailable returns all items still marked available.
func (r *MockFoodRepository) GetAllAvailable() ([]models.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemList := make([]models.FoodItem, 0, len(r.items))
	for _, item := range r.items {
		if item.Available {
			itemList = append(itemList, item)
		}
	}
	return itemList, nil
}

// GetByID returns a food item by its ID.
func (r *MockFoodRepository) GetByID(id uint) (*models.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

// Create adds a new food item, assigning a synthetic ID.
func (r *MockFoodRepository) Create(item *models.FoodItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == 0 {
		item.ID = r.nextID
		r.nextID++
	}
	r.items[item.ID] = *item
	return nil
}

// Update modifies an existing food item.
func (r *MockFoodRepository) Update(item *models.FoodItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[item.ID] = *item
	return nil
}

// Delete removes a food item by its ID.
func (r *MockFoodRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// Search filters available items by exact type and location.
func (r *MockFoodRepository) Search(foodType, location string) ([]models.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []models.FoodItem
	for _, item := range r.items {
		if item.Available && item.FoodType == foodType && item.Location == location {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

// Reserve claims an available item.
func (r *MockFoodRepository) Reserve(id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || !item.Available {
		return false, nil
	}
	item.Available = false
	r.items[id] = item
	return true, nil
}

// CountUnavailable counts donated items.
func (r *MockFoodRepository) CountUnavailable() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, item := range r.items {
		if !item.Available {
			count++
		}
	}
	return count, nil
}
