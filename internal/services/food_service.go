package services

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"carekitchen/internal/domain"
	"carekitchen/internal/models"
	"carekitchen/internal/policy"
	"carekitchen/internal/repositories"
	"carekitchen/pkg/storage"

	"github.com/google/uuid"
)

// FoodService handles the food item catalog: listing, lifecycle and
// image attachment.
type FoodService struct {
	foodRepo     repositories.FoodRepository
	categoryRepo repositories.CategoryRepository
	activityRepo repositories.ActivityRepository
	store        storage.Storage
	allowedExts  map[string]bool
}

// NewFoodService creates a new FoodService. allowedExtensions is the
// image-extension allow-list, lowercase and without leading dots.
func NewFoodService(
	foodRepo repositories.FoodRepository,
	categoryRepo repositories.CategoryRepository,
	activityRepo repositories.ActivityRepository,
	store storage.Storage,
	allowedExtensions []string,
) *FoodService {
	exts := make(map[string]bool, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		exts[strings.ToLower(ext)] = true
	}
	return &FoodService{
		foodRepo:     foodRepo,
		categoryRepo: categoryRepo,
		activityRepo: activityRepo,
		store:        store,
		allowedExts:  exts,
	}
}

// ListAvailable returns every item still marked available.
func (s *FoodService) ListAvailable() ([]models.FoodItem, error) {
	return s.foodRepo.GetAllAvailable()
}

// GetByID returns a single item.
func (s *FoodService) GetByID(id uint) (*models.FoodItem, error) {
	return s.foodRepo.GetByID(id)
}

// Create lists a new item owned by the caller. Quantity must be positive,
// price non-negative and the category must exist.
func (s *FoodService) Create(ownerID uint, req domain.CreateFoodItemRequest) (*models.FoodItem, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
		return nil, fmt.Errorf("food category %d: %w", req.CategoryID, err)
	}

	var expiry *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid expiry date", domain.ErrValidation)
		}
		expiry = &parsed
	}

	item := &models.FoodItem{
		UserID:     ownerID,
		FoodType:   req.FoodType,
		Quantity:   req.Quantity,
		Price:      req.Price,
		Location:   req.Location,
		Available:  true,
		ExpiryDate: expiry,
		CategoryID: req.CategoryID,
	}
	if err := s.foodRepo.Create(item); err != nil {
		return nil, err
	}

	recordActivity(s.activityRepo, ownerID, fmt.Sprintf("listed food item %q", item.FoodType))
	return item, nil
}

// Update edits an item. Only the owner may do so; absent fields are left
// unchanged.
func (s *FoodService) Update(actorID, itemID uint, req domain.UpdateFoodItemRequest) (*models.FoodItem, error) {
	item, err := s.foodRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if err := policy.RequireOwner(actorID, item.UserID); err != nil {
		return nil, err
	}

	if req.FoodType != "" {
		item.FoodType = req.FoodType
	}
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
		}
		item.Quantity = *req.Quantity
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
		}
		item.Price = *req.Price
	}
	if req.Location != "" {
		item.Location = req.Location
	}
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid expiry date", domain.ErrValidation)
		}
		item.ExpiryDate = &parsed
	}

	if err := s.foodRepo.Update(item); err != nil {
		return nil, err
	}

	recordActivity(s.activityRepo, actorID, fmt.Sprintf("updated food item %q", item.FoodType))
	return item, nil
}

// Delete removes an item. Only the owner may do so. History rows that
// reference the item are preserved as soft references.
func (s *FoodService) Delete(actorID, itemID uint) error {
	item, err := s.foodRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if err := policy.RequireOwner(actorID, item.UserID); err != nil {
		return err
	}
	if err := s.foodRepo.Delete(itemID); err != nil {
		return err
	}

	recordActivity(s.activityRepo, actorID, fmt.Sprintf("deleted food item %q", item.FoodType))
	return nil
}

// Search filters available items by exact, case-sensitive match on both
// type and location. "Bread" and "bread" are distinct on purpose.
func (s *FoodService) Search(foodType, location string) ([]models.FoodItem, error) {
	return s.foodRepo.Search(foodType, location)
}

// AttachImage stores the uploaded bytes through the storage collaborator
// and persists the returned reference on the item. Owner-only; the
// extension must be on the allow-list.
func (s *FoodService) AttachImage(actorID, itemID uint, filename string, data io.Reader) (*models.FoodItem, error) {
	item, err := s.foodRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if err := policy.RequireOwner(actorID, item.UserID); err != nil {
		return nil, err
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !s.allowedExts[ext] {
		return nil, fmt.Errorf("%w: unsupported file type %q", domain.ErrValidation, ext)
	}

	storedName := uuid.New().String() + "." + ext
	ref, err := s.store.Store(storedName, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	item.ImageFilename = ref
	if err := s.foodRepo.Update(item); err != nil {
		return nil, err
	}

	recordActivity(s.activityRepo, actorID, fmt.Sprintf("uploaded image for food item %q", item.FoodType))
	return item, nil
}

// Categories lists the category reference data.
func (s *FoodService) Categories() ([]models.FoodCategory, error) {
	return s.categoryRepo.GetAll()
}
