package services

import (
	"fmt"
	"log"

	"carekitchen/internal/domain"
	"carekitchen/internal/models"
	"carekitchen/internal/policy"
	"carekitchen/internal/repositories"
)

// UserService handles profiles, verification and the activity log.
type UserService struct {
	userRepo     repositories.UserRepository
	activityRepo repositories.ActivityRepository
	notifier     *NotificationService
}

// NewUserService creates a new UserService.
func NewUserService(
	userRepo repositories.UserRepository,
	activityRepo repositories.ActivityRepository,
	notifier *NotificationService,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		notifier:     notifier,
	}
}

// GetProfile returns a user's public profile.
func (s *UserService) GetProfile(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// UpdateProfile overwrites the caller's own profile fields. The unique
// indexes still guard username and email collisions.
func (s *UserService) UpdateProfile(userID uint, req domain.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.Username = req.Username
	user.Email = req.Email
	user.Bio = req.Bio
	user.Address = req.Address
	user.PhoneNumber = req.PhoneNumber

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	recordActivity(s.activityRepo, userID, "updated profile")
	return user, nil
}

// VerifyAccount marks a target account verified. NGO accounts only; any
// other role gets ErrForbidden and the target is left untouched.
func (s *UserService) VerifyAccount(actorID, targetID uint) (*models.User, error) {
	actor, err := s.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if err := policy.RequireRole(actor.Role, models.RoleNGO); err != nil {
		return nil, err
	}

	target, err := s.userRepo.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.SetVerified(target.ID); err != nil {
		return nil, err
	}
	target.IsVerified = true

	recordActivity(s.activityRepo, actorID, fmt.Sprintf("verified account of %s", target.Username))
	if s.notifier != nil {
		if _, err := s.notifier.Notify(target.ID, "Your account has been verified!"); err != nil {
			log.Printf("Warning: failed to notify user %d about verification: %v", target.ID, err)
		}
	}
	return target, nil
}

// ActivityLog returns a user's audit trail.
func (s *UserService) ActivityLog(userID uint) ([]models.UserActivity, error) {
	return s.activityRepo.GetByUser(userID)
}
