package services

import (
	"log"

	"carekitchen/internal/models"
	"carekitchen/internal/repositories"
)

// recordActivity appends an audit-trail entry. The trail is best-effort:
// a failed insert is logged and never fails the action that triggered it.
func recordActivity(repo repositories.ActivityRepository, userID uint, action string) {
	if repo == nil {
		return
	}
	err := repo.Create(&models.UserActivity{
		UserID: userID,
		Action: action,
	})
	if err != nil {
		log.Printf("Warning: failed to record activity for user %d: %v", userID, err)
	}
}
