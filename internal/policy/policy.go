package policy

import (
	"carekitchen/internal/domain"
	"carekitchen/internal/models"
)

// RequireOwner allows an action only when the actor owns the resource.
func RequireOwner(actorID, ownerID uint) error {
	if actorID != ownerID {
		return domain.ErrForbidden
	}
	return nil
}

// RequireRole allows an action only for actors holding the required role.
func RequireRole(actual, required models.UserRole) error {
	if actual != required {
		return domain.ErrForbidden
	}
	return nil
}
