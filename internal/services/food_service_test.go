package services_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"carekitchen/internal/domain"
	"carekitchen/internal/models"
	"carekitchen/internal/repositories"
	"carekitchen/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]models.FoodCategory, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FoodCategory), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id uint) (*models.FoodCategory, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodCategory), args.Error(1)
}

func (m *MockCategoryRepository) FirstOrCreate(name string) (*models.FoodCategory, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodCategory), args.Error(1)
}

// fakeStorage records stored files in memory.
type fakeStorage struct {
	stored map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{stored: make(map[string][]byte)}
}

func (f *fakeStorage) Store(filename string, data io.Reader) (string, error) {
	content, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	f.stored[filename] = content
	return filename, nil
}

func newFoodServiceForTest(t *testing.T) (*services.FoodService, *repositories.MockFoodRepository, *fakeStorage) {
	t.Helper()
	foodRepo := repositories.NewMockFoodRepository()
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("GetByID", uint(1)).Return(&models.FoodCategory{ID: 1, Name: "Bakery"}, nil)
	categoryRepo.On("GetByID", uint(99)).Return(nil, domain.ErrNotFound)
	store := newFakeStorage()
	svc := services.NewFoodService(foodRepo, categoryRepo, nil, store, []string{"png", "jpg", "jpeg", "gif"})
	return svc, foodRepo, store
}

func TestFoodService_Create(t *testing.T) {
	svc, _, _ := newFoodServiceForTest(t)

	// Free food with a zero price is valid
	item, err := svc.Create(1, domain.CreateFoodItemRequest{
		FoodType:   "Bread",
		Quantity:   10,
		Price:      0,
		Location:   "Downtown",
		CategoryID: 1,
		ExpiryDate: "2026-12-01",
	})
	assert.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.True(t, item.Available)
	assert.Equal(t, uint(1), item.UserID)
	assert.NotNil(t, item.ExpiryDate)

	// Quantity must be positive
	_, err = svc.Create(1, domain.CreateFoodItemRequest{
		FoodType: "Bread", Quantity: 0, Location: "Downtown", CategoryID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	// Price must not be negative
	_, err = svc.Create(1, domain.CreateFoodItemRequest{
		FoodType: "Bread", Quantity: 5, Price: -1, Location: "Downtown", CategoryID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	// Unknown category
	_, err = svc.Create(1, domain.CreateFoodItemRequest{
		FoodType: "Bread", Quantity: 5, Location: "Downtown", CategoryID: 99,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFoodService_UpdateOwnerOnly(t *testing.T) {
	svc, _, _ := newFoodServiceForTest(t)

	item, err := svc.Create(1, domain.CreateFoodItemRequest{
		FoodType: "Rice", Quantity: 10, Price: 5, Location: "Downtown", CategoryID: 1,
	})
	assert.NoError(t, err)

	// Someone else cannot edit the listing
	newQty := 3
	_, err = svc.Update(2, item.ID, domain.UpdateFoodItemRequest{Quantity: &newQty})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// The owner can; absent fields are left unchanged and an explicit zero
	// price takes effect
	zeroPrice := 0.0
	updated, err := svc.Update(1, item.ID, domain.UpdateFoodItemRequest{
		Quantity: &newQty,
		Price:    &zeroPrice,
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, 0.0, updated.Price)
	assert.Equal(t, "Rice", updated.FoodType)
	assert.Equal(t, "Downtown", updated.Location)

	// Bounds still apply on update
	badQty := -1
	_, err = svc.Update(1, item.ID, domain.UpdateFoodItemRequest{Quantity: &badQty})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFoodService_DeleteOwnerOnly(t *testing.T) {
	svc, _, _ := newFoodServiceForTest(t)

	item, err := svc.Create(1, domain.CreateFoodItemRequest{
		FoodType: "Soup", Quantity: 4, Location: "Uptown", CategoryID: 1,
	})
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(2, item.ID), domain.ErrForbidden)
	assert.NoError(t, svc.Delete(1, item.ID))

	_, err = svc.GetByID(item.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(1, item.ID), domain.ErrNotFound)
}

func TestFoodService_SearchIsExact(t *testing.T) {
	svc, _, _ := newFoodServiceForTest(t)

	_, err := svc.Create(1, domain.CreateFoodItemRequest{
		FoodType: "Bread", Quantity: 2, Location: "Downtown", CategoryID: 1,
	})
	assert.NoError(t, err)

	matches, err := svc.Search("Bread", "Downtown")
	assert.NoError(t, err)
	assert.Len(t, matches, 1)

	// Case matters, and both fields must match
	matches, err = svc.Search("bread", "Downtown")
	assert.NoError(t, err)
	assert.Empty(t, matches)

	matches, err = svc.Search("Bread", "Uptown")
	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFoodService_AttachImage(t *testing.T) {
	svc, _, store := newFoodServiceForTest(t)

	item, err := svc.Create(1, domain.CreateFoodItemRequest{
		FoodType: "Apples", Quantity: 6, Location: "Market", CategoryID: 1,
	})
	assert.NoError(t, err)

	// Non-owner rejected before any bytes are stored
	_, err = svc.AttachImage(2, item.ID, "apples.png", bytes.NewReader([]byte("fake png")))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, store.stored)

	// Extension outside the allow-list rejected
	_, err = svc.AttachImage(1, item.ID, "apples.exe", bytes.NewReader([]byte("nope")))
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, store.stored)

	// Successful upload stores under a generated name, not the client's
	updated, err := svc.AttachImage(1, item.ID, "apples.PNG", bytes.NewReader([]byte("fake png")))
	assert.NoError(t, err)
	assert.NotEmpty(t, updated.ImageFilename)
	assert.NotEqual(t, "apples.PNG", updated.ImageFilename)
	assert.True(t, strings.HasSuffix(updated.ImageFilename, ".png"))
	assert.Len(t, store.stored, 1)

	fetched, err := svc.GetByID(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, updated.ImageFilename, fetched.ImageFilename)
}
