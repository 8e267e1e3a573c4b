package handlers

import (
	"carekitchen/internal/domain"
	"carekitchen/internal/services"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler handles HTTP requests for user notifications.
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// RegisterRoutes registers the notification routes with the Fiber app.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	notificationRoutes := router.Group("/notifications")
	notificationRoutes.Get("/", h.HandleList)
	notificationRoutes.Patch("/:id/read", h.HandleMarkRead)
}

// HandleList returns the caller's notifications.
func (h *NotificationHandler) HandleList(c *fiber.Ctx) error {
	notifications, err := h.notificationService.List(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(notifications)
}

// HandleMarkRead flips a notification's read flag; only the recipient may.
func (h *NotificationHandler) HandleMarkRead(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.notificationService.MarkRead(currentUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "Notification marked as read",
		"category": domain.CategorySuccess,
	})
}
