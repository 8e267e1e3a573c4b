package handlers

import (
	"log"

	"carekitchen/internal/domain"
	"carekitchen/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// InteractionHandler handles HTTP requests for item requests, ratings,
// history lookups, feedback and analytics.
type InteractionHandler struct {
	interactionService *services.InteractionService
	validate           *validator.Validate
}

// NewInteractionHandler creates a new InteractionHandler.
func NewInteractionHandler(interactionService *services.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
		validate:           validator.New(),
	}
}

// RegisterRoutes registers the interaction routes with the Fiber app.
func (h *InteractionHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/foods/:id/request", h.HandleRequestItem)
	router.Post("/users/:id/rate", h.HandleRateUser)
	router.Get("/users/:id/ratings", h.HandleGetRatings)
	router.Get("/history/donations", h.HandleDonationHistory)
	router.Get("/history/requests", h.HandleRequestHistory)
	router.Post("/feedback", h.HandleSubmitFeedback)
	router.Get("/analytics", h.HandleAnalytics)
}

// HandleRequestItem reserves an available item for the caller.
func (h *InteractionHandler) HandleRequestItem(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	request, err := h.interactionService.RequestItem(currentUserID(c), id)
	if err != nil {
		log.Printf("Error requesting food item %d: %v", id, err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Food item requested successfully!",
		"category": domain.CategorySuccess,
		"request":  request,
	})
}

// HandleRateUser records a rating for another user.
func (h *InteractionHandler) HandleRateUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req domain.RateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	rating, err := h.interactionService.RateUser(currentUserID(c), id, req)
	if err != nil {
		log.Printf("Error rating user %d: %v", id, err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Rating and review submitted successfully!",
		"category": domain.CategorySuccess,
		"rating":   rating,
	})
}

// HandleGetRatings lists ratings a user has received.
func (h *InteractionHandler) HandleGetRatings(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	ratings, err := h.interactionService.RatingsForUser(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ratings)
}

// HandleDonationHistory lists the caller's donation records.
func (h *InteractionHandler) HandleDonationHistory(c *fiber.Ctx) error {
	donations, err := h.interactionService.DonationHistory(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(donations)
}

// HandleRequestHistory lists the caller's request records.
func (h *InteractionHandler) HandleRequestHistory(c *fiber.Ctx) error {
	requests, err := h.interactionService.RequestHistory(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(requests)
}

// HandleSubmitFeedback appends a feedback record.
func (h *InteractionHandler) HandleSubmitFeedback(c *fiber.Ctx) error {
	var req domain.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	if _, err := h.interactionService.SubmitFeedback(currentUserID(c), req.Message); err != nil {
		log.Printf("Error submitting feedback: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Thank you for your feedback!",
		"category": domain.CategorySuccess,
	})
}

// HandleAnalytics returns the aggregate counters.
func (h *InteractionHandler) HandleAnalytics(c *fiber.Ctx) error {
	analytics, err := h.interactionService.Analytics()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(analytics)
}
