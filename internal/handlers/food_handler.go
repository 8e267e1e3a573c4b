package handlers

import (
	"log"

	"carekitchen/internal/domain"
	"carekitchen/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FoodHandler handles HTTP requests for the food item catalog.
type FoodHandler struct {
	foodService *services.FoodService
	validate    *validator.Validate
}

// NewFoodHandler creates a new FoodHandler.
func NewFoodHandler(foodService *services.FoodService) *FoodHandler {
	return &FoodHandler{
		foodService: foodService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the food routes with the Fiber app. Static
// paths go first so they are not swallowed by the :id parameter.
func (h *FoodHandler) RegisterRoutes(router fiber.Router) {
	foodRoutes := router.Group("/foods")
	foodRoutes.Get("/search", h.HandleSearch)
	foodRoutes.Get("/categories", h.HandleGetCategories)
	foodRoutes.Get("/", h.HandleListAvailable)
	foodRoutes.Post("/", h.HandleCreate)
	foodRoutes.Get("/:id", h.HandleGetByID)
	foodRoutes.Put("/:id", h.HandleUpdate)
	foodRoutes.Delete("/:id", h.HandleDelete)
	foodRoutes.Post("/:id/image", h.HandleUploadImage)
}

// HandleListAvailable returns every item still marked available.
func (h *FoodHandler) HandleListAvailable(c *fiber.Ctx) error {
	items, err := h.foodService.ListAvailable()
	if err != nil {
		log.Printf("Error listing available food items: %v", err)
		return respondError(c, err)
	}
	return c.JSON(items)
}

// HandleGetByID returns a single item.
func (h *FoodHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	item, err := h.foodService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// HandleCreate lists a new food item owned by the caller.
func (h *FoodHandler) HandleCreate(c *fiber.Ctx) error {
	var req domain.CreateFoodItemRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	item, err := h.foodService.Create(currentUserID(c), req)
	if err != nil {
		log.Printf("Error creating food item: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Food item added successfully!",
		"category":  domain.CategorySuccess,
		"food_item": item,
	})
}

// HandleUpdate edits an item; the service rejects non-owners.
func (h *FoodHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req domain.UpdateFoodItemRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	item, err := h.foodService.Update(currentUserID(c), id, req)
	if err != nil {
		log.Printf("Error updating food item %d: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":   "Food item updated successfully!",
		"category":  domain.CategorySuccess,
		"food_item": item,
	})
}

// HandleDelete removes an item; the service rejects non-owners.
func (h *FoodHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.foodService.Delete(currentUserID(c), id); err != nil {
		log.Printf("Error deleting food item %d: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "Food item deleted successfully!",
		"category": domain.CategorySuccess,
	})
}

// HandleSearch filters available items by exact type and location.
func (h *FoodHandler) HandleSearch(c *fiber.Ctx) error {
	foodType := c.Query("food_type")
	location := c.Query("location")
	if foodType == "" || location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message":  "food_type and location query parameters are required",
			"category": domain.CategoryDanger,
		})
	}

	items, err := h.foodService.Search(foodType, location)
	if err != nil {
		log.Printf("Error searching food items: %v", err)
		return respondError(c, err)
	}
	return c.JSON(items)
}

// HandleGetCategories lists the food category reference data.
func (h *FoodHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.foodService.Categories()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// HandleUploadImage attaches an uploaded image to an item the caller owns.
func (h *FoodHandler) HandleUploadImage(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message":  "No selected file",
			"category": domain.CategoryDanger,
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer file.Close()

	item, err := h.foodService.AttachImage(currentUserID(c), id, fileHeader.Filename, file)
	if err != nil {
		log.Printf("Error uploading image for food item %d: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":   "Image successfully uploaded",
		"category":  domain.CategorySuccess,
		"food_item": item,
	})
}
