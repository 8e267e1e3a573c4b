package services

import (
	"log"

	"carekitchen/internal/models"
	"carekitchen/internal/policy"
	"carekitchen/internal/repositories"
	"carekitchen/pkg/rabbitmq"
)

// EventPublisher publishes notification events for out-of-band delivery.
// *rabbitmq.Client satisfies it.
type EventPublisher interface {
	PublishNotification(event rabbitmq.NotificationEvent) error
}

// NotificationService handles in-app notifications and their delivery
// events.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	publisher        EventPublisher // may be nil when no broker is configured
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	publisher EventPublisher,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		publisher:        publisher,
	}
}

// Notify stores an unread notification for the user and publishes a
// delivery event. A publish failure is logged, never propagated: delivery
// is fire-and-forget and must not roll back the stored row.
func (s *NotificationService) Notify(userID uint, message string) (*models.Notification, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	notification := &models.Notification{
		UserID:  userID,
		Message: message,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := rabbitmq.NotificationEvent{
			UserID:  user.ID,
			Email:   user.Email,
			Subject: "Community Care Kitchen",
			Message: message,
		}
		if err := s.publisher.PublishNotification(event); err != nil {
			log.Printf("Warning: failed to publish notification event for user %d: %v", userID, err)
		}
	}

	return notification, nil
}

// List returns the user's notifications.
func (s *NotificationService) List(userID uint) ([]models.Notification, error) {
	return s.notificationRepo.GetByUser(userID)
}

// MarkRead flips a notification's read flag. Only the recipient may do so.
func (s *NotificationService) MarkRead(actorID, notificationID uint) error {
	notification, err := s.notificationRepo.GetByID(notificationID)
	if err != nil {
		return err
	}
	if err := policy.RequireOwner(actorID, notification.UserID); err != nil {
		return err
	}
	return s.notificationRepo.MarkRead(notificationID)
}
