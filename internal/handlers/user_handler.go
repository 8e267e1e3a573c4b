package handlers

import (
	"fmt"
	"log"

	"carekitchen/internal/domain"
	"carekitchen/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for profiles, passwords, verification
// and the activity log.
type UserHandler struct {
	userService *services.UserService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Put("/me", h.HandleUpdateProfile)
	userRoutes.Put("/me/password", h.HandleChangePassword)
	userRoutes.Get("/me/activity", h.HandleActivityLog)
	userRoutes.Get("/:id", h.HandleGetProfile)
	userRoutes.Post("/:id/verify", h.HandleVerifyAccount)
}

// HandleGetProfile returns a user's public profile.
func (h *UserHandler) HandleGetProfile(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	user, err := h.userService.GetProfile(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleUpdateProfile edits the caller's own profile.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req domain.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	user, err := h.userService.UpdateProfile(currentUserID(c), req)
	if err != nil {
		log.Printf("Error updating profile: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "Profile updated successfully!",
		"category": domain.CategorySuccess,
		"user":     user,
	})
}

// HandleChangePassword replaces the caller's credential.
func (h *UserHandler) HandleChangePassword(c *fiber.Ctx) error {
	var req domain.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	if err := h.authService.ChangePassword(currentUserID(c), req); err != nil {
		log.Printf("Error changing password for user %d: %v", currentUserID(c), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "Password changed successfully!",
		"category": domain.CategorySuccess,
	})
}

// HandleVerifyAccount lets an NGO mark another account verified.
func (h *UserHandler) HandleVerifyAccount(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	target, err := h.userService.VerifyAccount(currentUserID(c), id)
	if err != nil {
		log.Printf("Error verifying account %d: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  fmt.Sprintf("%s's account has been verified successfully!", target.Username),
		"category": domain.CategorySuccess,
		"user":     target,
	})
}

// HandleActivityLog returns the caller's audit trail.
func (h *UserHandler) HandleActivityLog(c *fiber.Ctx) error {
	activities, err := h.userService.ActivityLog(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(activities)
}
